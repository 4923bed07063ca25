package localstore

// Store holds one opaque value under one fixed key, mirroring a browser
// local-storage slot. Load reports ok=false when nothing has been saved yet.
type Store interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}
