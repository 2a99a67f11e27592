package cloudwriter

// CloudWriter buffers report bytes destined for object storage; the upload
// happens on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory opens writers against a storage bucket.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath, contentType string) (CloudWriter, error)
}
