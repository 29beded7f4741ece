package api

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// CodecName is the gRPC content subtype every wave.v1 call is made with.
const CodecName = "wave"

func init() {
	encoding.RegisterCodec(structCodec{})
}

// structCodec carries the plain Go request and response structs of this
// package as google.protobuf.Value messages. Field names follow the json tags.
type structCodec struct{}

func (structCodec) Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	pv, err := structpb.NewValue(tree)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return proto.Marshal(pv)
}

func (structCodec) Unmarshal(data []byte, v any) error {
	var pv structpb.Value
	if err := proto.Unmarshal(data, &pv); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	// Numbers come back as float64; encoding/json prints integral values
	// below 1e21 without an exponent, so int64 fields decode cleanly.
	raw, err := json.Marshal(pv.AsInterface())
	if err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return json.Unmarshal(raw, v)
}

func (structCodec) Name() string { return CodecName }
