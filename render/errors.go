package render

import "fmt"

// AssetError reports a texture that could not be loaded or decoded
// Failed assets are remembered; affected sprites draw as placeholders
type AssetError struct {
	Name string
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("render: asset %q (%s): %v", e.Name, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
