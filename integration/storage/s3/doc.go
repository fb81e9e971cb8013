// Package s3 implements storage.Storage on Amazon S3 and S3-compatible
// services (MinIO, DigitalOcean Spaces, Wasabi) with the AWS SDK v2.
//
// It is used to archive rendered QR codes so they can be linked from printed
// packaging or catalog exports.
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket: "dates-qr",
//		Region: "me-south-1",
//	})
//	if err != nil {
//		return err
//	}
//
//	file, err := store.Put(ctx, "qr/qr-Medjool-Dates-1.png", png, "image/png")
//	url := store.URL(file.RelativePath)
//
// MinIO:
//
//	cfg := s3.Config{
//		Bucket:         "dates-qr",
//		Region:         "us-east-1",
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// Tests inject a client with WithS3Client.
package s3
