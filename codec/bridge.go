package codec

import "github.com/meridianhq/tcontainer"

// PutEncoded encodes v with codec and wraps the result as a bytes-tag
// Value named name, so an application type can ride inside a Container
// alongside the sixteen native kinds.
func PutEncoded[V any](c Codec[V], name string, v V) (tcontainer.Value, error) {
	b, err := c.Encode(v)
	if err != nil {
		return tcontainer.Value{}, err
	}
	return tcontainer.NewBytes(name, b), nil
}

// GetDecoded decodes a bytes-tag Value's payload with codec into a V. It
// returns an error if value is not a bytes-tag Value.
func GetDecoded[V any](c Codec[V], value tcontainer.Value) (V, error) {
	var zero V
	b, err := value.AsBytes()
	if err != nil {
		return zero, err
	}
	return c.Decode(b)
}
