package cosched

// flight is a call in progress, joined by later callers of the same
// key.
type flight struct {
	wg     WaitGroup // Holds joiners until the call returns
	val    any       // Result of the call
	err    error     // Error of the call
	joined int       // Number of callers that joined
}

// singleFlight deduplicates calls by key among the tasks of one
// scheduler. The zero value is ready to use.
type singleFlight struct {
	m map[any]*flight // In-flight calls by key
}

// do runs fn for key unless a call for key is in flight, in which case
// task parks until that call returns and shares its result.
func (g *singleFlight) do(task *Task, key any, fn func() (any, error)) (any, error, bool) {
	if g.m == nil {
		g.m = make(map[any]*flight)
	}

	if f, ok := g.m[key]; ok {
		f.joined++
		f.wg.Wait(task)
		return f.val, f.err, true
	}

	f := new(flight)
	f.wg.Add(1)
	g.m[key] = f

	g.call(f, key, fn)
	return f.val, f.err, f.joined > 0
}

// call runs fn, then frees key and wakes the joiners.
func (g *singleFlight) call(f *flight, key any, fn func() (any, error)) {
	defer func() {
		delete(g.m, key)
		f.wg.Done()
	}()

	f.val, f.err = fn()
}
