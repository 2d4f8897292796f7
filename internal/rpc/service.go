package rpc

import (
	"context"
	"errors"

	"github.com/avc-dev/link-shortener/internal/middleware"
	"github.com/avc-dev/link-shortener/internal/model"
	"github.com/avc-dev/link-shortener/internal/usecase"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName полное имя gRPC сервиса
const ServiceName = "shortener.v1.LinkService"

// LinkUsecase операции над ссылками, доступные по gRPC
type LinkUsecase interface {
	CreateLink(ctx context.Context, ownerID string, input model.CreateLinkInput) (model.Link, error)
	UpdateLink(ctx context.Context, ownerID string, id int64, update model.LinkUpdate) (model.Link, error)
	DeleteLink(ctx context.Context, ownerID string, id int64) error
	ListLinks(ctx context.Context, ownerID string, sort string) ([]model.Link, error)
}

// LinkServiceServer серверная часть shortener.v1.LinkService
type LinkServiceServer interface {
	CreateLink(ctx context.Context, req *CreateLinkRequest) (*LinkResponse, error)
	UpdateLink(ctx context.Context, req *UpdateLinkRequest) (*LinkResponse, error)
	DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*DeleteLinkResponse, error)
	ListLinks(ctx context.Context, req *ListLinksRequest) (*ListLinksResponse, error)
}

// LinkServer реализует LinkServiceServer поверх usecase
type LinkServer struct {
	usecase LinkUsecase
	logger  *zap.Logger
}

// NewLinkServer создает новый экземпляр LinkServer
func NewLinkServer(usecase LinkUsecase, logger *zap.Logger) *LinkServer {
	return &LinkServer{
		usecase: usecase,
		logger:  logger,
	}
}

func (s *LinkServer) CreateLink(ctx context.Context, req *CreateLinkRequest) (*LinkResponse, error) {
	link, err := s.usecase.CreateLink(ctx, ownerID(ctx), req.CreateLinkInput)
	if err != nil {
		return nil, toStatus(err, usecase.MsgCreateFailed)
	}
	return &LinkResponse{Link: link}, nil
}

func (s *LinkServer) UpdateLink(ctx context.Context, req *UpdateLinkRequest) (*LinkResponse, error) {
	link, err := s.usecase.UpdateLink(ctx, ownerID(ctx), req.ID, req.LinkUpdate)
	if err != nil {
		return nil, toStatus(err, usecase.MsgUpdateFailed)
	}
	return &LinkResponse{Link: link}, nil
}

func (s *LinkServer) DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*DeleteLinkResponse, error) {
	if err := s.usecase.DeleteLink(ctx, ownerID(ctx), req.ID); err != nil {
		return nil, toStatus(err, usecase.MsgDeleteFailed)
	}
	return &DeleteLinkResponse{}, nil
}

func (s *LinkServer) ListLinks(ctx context.Context, req *ListLinksRequest) (*ListLinksResponse, error) {
	links, err := s.usecase.ListLinks(ctx, ownerID(ctx), req.Sort)
	if err != nil {
		return nil, toStatus(err, usecase.MsgListFailed)
	}
	if links == nil {
		links = []model.Link{}
	}
	return &ListLinksResponse{Links: links}, nil
}

func ownerID(ctx context.Context) string {
	userID, _ := middleware.GetUserIDFromContext(ctx)
	return userID
}

// toStatus переводит ошибку usecase в gRPC статус с тем же текстом, что и HTTP API
func toStatus(err error, fallback string) error {
	message := usecase.PublicMessage(err, fallback)

	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, message)
	case errors.Is(err, usecase.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, message)
	case errors.Is(err, usecase.ErrLinkNotFound):
		return status.Error(codes.NotFound, message)
	case errors.Is(err, usecase.ErrDuplicateShortCode):
		return status.Error(codes.AlreadyExists, message)
	default:
		return status.Error(codes.Internal, message)
	}
}

func unaryHandler[Req, Resp any](method string, call func(LinkServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + ServiceName + "/" + method

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, status.Error(codes.InvalidArgument, "Invalid request body")
		}

		server := srv.(LinkServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		})
	}
}

// LinkServiceDesc описание сервиса для grpc.Server.RegisterService
var LinkServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LinkServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateLink",
			Handler:    unaryHandler("CreateLink", LinkServiceServer.CreateLink),
		},
		{
			MethodName: "UpdateLink",
			Handler:    unaryHandler("UpdateLink", LinkServiceServer.UpdateLink),
		},
		{
			MethodName: "DeleteLink",
			Handler:    unaryHandler("DeleteLink", LinkServiceServer.DeleteLink),
		},
		{
			MethodName: "ListLinks",
			Handler:    unaryHandler("ListLinks", LinkServiceServer.ListLinks),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shortener/v1/link_service",
}
