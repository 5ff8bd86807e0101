// Package scheduler runs work on a bounded set of workers and hands back a
// Future per submission.
//
//	AddWork ──► [ FIFO queue ] ──► worker 1..N ──► Future.C()
//
// At most N pieces of work run at once; the rest wait in submission order.
// Every Future delivers exactly one Result, whatever happens:
//
//   - the work ran: its value and error
//   - the work panicked: an error describing the panic
//   - Stop was called or the scheduler closed before the work started:
//     context.Canceled, and the work never runs
//
// Stop and Close cancel the context handed to running work; it is up to the
// work to return early.
//
// Wait gathers the results of a batch in submission order:
//
//	s := scheduler.NewScheduler[models.Guest](4)
//	defer s.Close()
//
//	futures := make([]*scheduler.Future[scheduler.Result[models.Guest]], 0, len(guests))
//	for _, g := range guests {
//	    futures = append(futures, s.AddWork(func(ctx context.Context) (models.Guest, error) {
//	        return store.Create(ctx, g)
//	    }))
//	}
//	results := scheduler.Wait(ctx, futures)
package scheduler
