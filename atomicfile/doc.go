/*
Package atomicfile writes a file so that readers only ever see the old
contents or the complete new contents.

Data goes to a temporary file created next to the destination. On Close
the temporary file is synced and renamed over the destination. If any
Write or the final sync/rename fails, the temporary file is deleted and
the destination is left untouched.

	func save(path string, data []byte) error {
		f, err := atomicfile.New(path)
		if err != nil {
			return err
		}
		// no-op after a successful Close
		defer f.RemoveIfNotClosed()

		if _, err = f.Write(data); err != nil {
			return err
		}
		return f.Close()
	}

WriteFile does the above in one call.
*/
package atomicfile
