package u

import "fmt"

func PanicIf(cond bool, args ...any) {
	if !cond {
		return
	}
	s := "condition failed"
	if len(args) > 0 {
		s = fmt.Sprintf("%s", args[0])
		if len(args) > 1 {
			s = fmt.Sprintf(s, args[1:]...)
		}
	}
	panic(s)
}

func PanicIfErr(err error, args ...any) {
	if err == nil {
		return
	}
	if len(args) == 0 {
		panic(err.Error())
	}
	PanicIf(true, args...)
}
