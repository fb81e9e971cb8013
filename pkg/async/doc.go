// Package async provides utilities for asynchronous programming with Go generics.
//
// This package implements a Future pattern for non-blocking operations with timeout support
// and coordination utilities for managing multiple asynchronous computations.
//
// # Core Types
//
// Future[U] represents the result of an asynchronous computation. It provides methods
// to wait for completion (Await), check status without blocking (IsComplete), and
// handle timeouts (AwaitWithTimeout).
//
// # Usage
//
// Basic asynchronous operation:
//
//	render := func(ctx context.Context, data productqr.ProductQRData) (*productqr.Result, error) {
//		return generator.Generate(ctx, data)
//	}
//
//	// Execute asynchronously
//	future := async.Async(ctx, product, render)
//
//	// Do other work...
//
//	// Wait for result
//	res, err := future.Await()
//	if err != nil {
//		return err
//	}
//
// Using timeout:
//
//	res, err := future.AwaitWithTimeout(2 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("Operation timed out")
//	}
//
// # Coordination Utilities
//
// WaitAll waits for all futures to complete and returns their results in order:
//
//	futures := make([]*async.Future[*productqr.Result], 0, len(products))
//	for _, p := range products {
//		futures = append(futures, async.Async(ctx, p, render))
//	}
//
//	results, err := async.WaitAll(futures...)
//
// Resolved wraps a value that is already known as a completed Future.
//
// # Error Handling
//
// AwaitWithTimeout returns ErrTimeout when its duration elapses first.
//
// # Concurrency Safety
//
// A Future is written once by its goroutine before the done channel closes,
// so any number of goroutines may Await it.
//
// # Context Support
//
// All asynchronous operations respect context cancellation. If a context is
// cancelled before the async function begins execution, it returns immediately
// with the context's error.
package async
