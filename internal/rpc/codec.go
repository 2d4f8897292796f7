package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName подтип content-type, под которым регистрируется JSON кодек
const CodecName = "json"

// jsonCodec сериализует сообщения LinkService в JSON вместо protobuf
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
