// Package productqr encodes dates product provenance records as QR codes.
//
// A ProductQRData record is serialized into a compact JSON payload tagged with
// the "saudi-dates-product" type and a generation timestamp:
//
//	raw := productqr.EncodePayload(data)
//	got, ok := productqr.DecodePayload(raw) // ok is false for foreign codes
//
// DecodePayload never fails loudly. Malformed input, a missing or different
// type and mistyped fields all yield ok == false. The timestamp is not part of
// the decoded record; use ParsePayload to read it.
//
// Generator ties the codec to the qrcode renderer and to storage:
//
//	gen := productqr.NewGenerator(
//		productqr.WithRenderOptions(qrcode.WithWidth(512)),
//		productqr.WithStorage(store),
//		productqr.WithLogger(log),
//	)
//	res, err := gen.Generate(ctx, data)
//	var encErr *qrcode.EncodingError
//	if errors.As(err, &encErr) {
//		// payload too long for the error correction level
//	}
//	file, err := gen.Save(ctx, res) // stored as productqr.Filename(data)
//
// Display tracks one widget through idle, loading, error and ready. Renders
// run in the background and a result is applied only if no newer Refresh was
// issued for the same display:
//
//	board := productqr.NewBoard(gen)
//	fut := board.Refresh(ctx, data.ProductID, data)
//	state, _ := fut.Await()
//	current := board.Snapshot(data.ProductID)
package productqr
