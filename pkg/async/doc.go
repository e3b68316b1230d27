// Package async runs a single call in the background and exposes its
// eventual result as a Future.
//
// A Future is created by Async, which starts the supplied function in its own
// goroutine, or by Settled, which wraps a result that is already known. The
// caller can block with Await, bound the wait with AwaitContext or
// AwaitWithTimeout, or poll with IsComplete.
//
//	f := async.Async(ctx, req, func(ctx context.Context, r Request) (struct{}, error) {
//		return struct{}{}, sender.Send(ctx, r)
//	})
//
//	if _, err := f.AwaitContext(ctx); err != nil {
//		// handle error
//	}
//
// AwaitContext and AwaitWithTimeout never cancel the running call; they only
// stop waiting for it.
package async
