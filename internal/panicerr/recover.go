package panicerr

// Recover calls f, converting any panic it raises into a non-nil error
// return. Unlike a bare recover, the error keeps the panic's stack and wraps
// any error value that was panicked.
func Recover(name string, f func() (err error)) (err error) {
	defer recoverPanicError(name, &err)
	return f()
}
