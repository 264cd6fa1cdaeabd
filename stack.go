package fourth

// Callers check depth before using these; see opDepth.

func (e *Evaluator) push(val Value) {
	e.stack = append(e.stack, val)
}

func (e *Evaluator) pop() (val Value) {
	i := len(e.stack) - 1
	val, e.stack = e.stack[i], e.stack[:i]
	return val
}

// peek returns the value n places below the top.
func (e *Evaluator) peek(n int) Value {
	return e.stack[len(e.stack)-1-n]
}

// fold reduces the whole stack left to right, starting from the bottom, and
// leaves only the result.
func (e *Evaluator) fold(f func(a, b Value) Value) {
	acc := e.stack[0]
	for _, val := range e.stack[1:] {
		acc = f(acc, val)
	}
	e.stack = append(e.stack[:0], acc)
}
