package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// LinkClient клиент shortener.v1.LinkService с JSON кодеком
type LinkClient struct {
	cc grpc.ClientConnInterface
}

// NewLinkClient создает клиента поверх установленного соединения
func NewLinkClient(cc grpc.ClientConnInterface) *LinkClient {
	return &LinkClient{cc: cc}
}

func (c *LinkClient) CreateLink(ctx context.Context, req *CreateLinkRequest, opts ...grpc.CallOption) (*LinkResponse, error) {
	out := new(LinkResponse)
	return out, c.invoke(ctx, "CreateLink", req, out, opts)
}

func (c *LinkClient) UpdateLink(ctx context.Context, req *UpdateLinkRequest, opts ...grpc.CallOption) (*LinkResponse, error) {
	out := new(LinkResponse)
	return out, c.invoke(ctx, "UpdateLink", req, out, opts)
}

func (c *LinkClient) DeleteLink(ctx context.Context, req *DeleteLinkRequest, opts ...grpc.CallOption) (*DeleteLinkResponse, error) {
	out := new(DeleteLinkResponse)
	return out, c.invoke(ctx, "DeleteLink", req, out, opts)
}

func (c *LinkClient) ListLinks(ctx context.Context, req *ListLinksRequest, opts ...grpc.CallOption) (*ListLinksResponse, error) {
	out := new(ListLinksResponse)
	return out, c.invoke(ctx, "ListLinks", req, out, opts)
}

func (c *LinkClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}
