// Package storage defines the file storage contract used to persist rendered
// artifacts, together with a local filesystem backend.
//
// Backends implement Storage. The local backend writes under a root
// directory; an S3 backend lives in integration/storage/s3.
//
//	store, err := storage.NewLocal("./qr-codes", storage.WithBaseURL("/files"))
//	if err != nil {
//		return err
//	}
//
//	file, err := store.Put(ctx, "products/qr-Medjool-Dates-1.png", png, "image/png")
//	if err != nil {
//		return err
//	}
//	fmt.Println(store.URL(file.RelativePath))
//
// # Paths
//
// Paths are slash separated and relative to the backend root. Leading slashes
// are stripped and any path containing ".." is rejected with ErrInvalidPath.
//
// # Error Handling
//
//	_, err := store.Put(ctx, path, data, "")
//	switch {
//	case errors.Is(err, storage.ErrInvalidPath):
//		// bad key
//	case errors.Is(err, storage.ErrAccessDenied):
//		// credentials or permissions
//	case errors.Is(err, storage.ErrOperationTimeout):
//		// retry later
//	}
package storage
