package interfaces

import "context"

// IPhotoStore abstracts the object store holding work-order photos.
//
// Upload stores the file under a collision-free name and returns the public
// URL recorded on the aggregate.
type IPhotoStore interface {
	Upload(ctx context.Context, fileName string, data []byte) (url string, err error)
}
