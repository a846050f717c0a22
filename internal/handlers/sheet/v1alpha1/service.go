package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "godbound.sheet.v1alpha1.SheetService"

// Method names
const (
	MethodDispatch              = "Dispatch"
	MethodResolveAttributeCheck = "ResolveAttributeCheck"
	MethodResolveSavingThrow    = "ResolveSavingThrow"
	MethodCreateSubject         = "CreateSubject"
	MethodGetSubject            = "GetSubject"
	MethodRenderSheet           = "RenderSheet"
	MethodListMessages          = "ListMessages"
	MethodClearMessages         = "ClearMessages"
)

// SheetServiceServer is the server API for the sheet service
type SheetServiceServer interface {
	Dispatch(context.Context, *DispatchRequest) (*DispatchResponse, error)
	ResolveAttributeCheck(context.Context, *ResolveAttributeCheckRequest) (*ResolveCheckResponse, error)
	ResolveSavingThrow(context.Context, *ResolveSavingThrowRequest) (*ResolveCheckResponse, error)
	CreateSubject(context.Context, *CreateSubjectRequest) (*SubjectResponse, error)
	GetSubject(context.Context, *GetSubjectRequest) (*SubjectResponse, error)
	RenderSheet(context.Context, *RenderSheetRequest) (*RenderSheetResponse, error)
	ListMessages(context.Context, *ListMessagesRequest) (*ListMessagesResponse, error)
	ClearMessages(context.Context, *ClearMessagesRequest) (*ClearMessagesResponse, error)
}

// SheetServiceDesc describes the service for grpc.Server registration
var SheetServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodDispatch, SheetServiceServer.Dispatch),
		unary(MethodResolveAttributeCheck, SheetServiceServer.ResolveAttributeCheck),
		unary(MethodResolveSavingThrow, SheetServiceServer.ResolveSavingThrow),
		unary(MethodCreateSubject, SheetServiceServer.CreateSubject),
		unary(MethodGetSubject, SheetServiceServer.GetSubject),
		unary(MethodRenderSheet, SheetServiceServer.RenderSheet),
		unary(MethodListMessages, SheetServiceServer.ListMessages),
		unary(MethodClearMessages, SheetServiceServer.ClearMessages),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "godbound/sheet/v1alpha1/sheet.json",
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Resp any](
	method string,
	call func(SheetServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SheetServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SheetServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SheetServiceClient is the client API for the sheet service
type SheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client on cc. Every call is sent with the
// json content subtype.
func NewSheetServiceClient(cc grpc.ClientConnInterface) *SheetServiceClient {
	return &SheetServiceClient{cc: cc}
}

func invoke[Req, Resp any](
	ctx context.Context,
	c *SheetServiceClient,
	method string,
	in *Req,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Dispatch sends a UI intent
func (c *SheetServiceClient) Dispatch(
	ctx context.Context, in *DispatchRequest, opts ...grpc.CallOption,
) (*DispatchResponse, error) {
	return invoke[DispatchRequest, DispatchResponse](ctx, c, MethodDispatch, in, opts)
}

// ResolveAttributeCheck rolls an attribute check
func (c *SheetServiceClient) ResolveAttributeCheck(
	ctx context.Context, in *ResolveAttributeCheckRequest, opts ...grpc.CallOption,
) (*ResolveCheckResponse, error) {
	return invoke[ResolveAttributeCheckRequest, ResolveCheckResponse](ctx, c, MethodResolveAttributeCheck, in, opts)
}

// ResolveSavingThrow rolls a saving throw
func (c *SheetServiceClient) ResolveSavingThrow(
	ctx context.Context, in *ResolveSavingThrowRequest, opts ...grpc.CallOption,
) (*ResolveCheckResponse, error) {
	return invoke[ResolveSavingThrowRequest, ResolveCheckResponse](ctx, c, MethodResolveSavingThrow, in, opts)
}

// CreateSubject creates a sheet
func (c *SheetServiceClient) CreateSubject(
	ctx context.Context, in *CreateSubjectRequest, opts ...grpc.CallOption,
) (*SubjectResponse, error) {
	return invoke[CreateSubjectRequest, SubjectResponse](ctx, c, MethodCreateSubject, in, opts)
}

// GetSubject reads a sheet
func (c *SheetServiceClient) GetSubject(
	ctx context.Context, in *GetSubjectRequest, opts ...grpc.CallOption,
) (*SubjectResponse, error) {
	return invoke[GetSubjectRequest, SubjectResponse](ctx, c, MethodGetSubject, in, opts)
}

// RenderSheet reads the sheet view
func (c *SheetServiceClient) RenderSheet(
	ctx context.Context, in *RenderSheetRequest, opts ...grpc.CallOption,
) (*RenderSheetResponse, error) {
	return invoke[RenderSheetRequest, RenderSheetResponse](ctx, c, MethodRenderSheet, in, opts)
}

// ListMessages reads a chat log
func (c *SheetServiceClient) ListMessages(
	ctx context.Context, in *ListMessagesRequest, opts ...grpc.CallOption,
) (*ListMessagesResponse, error) {
	return invoke[ListMessagesRequest, ListMessagesResponse](ctx, c, MethodListMessages, in, opts)
}

// ClearMessages clears a chat log
func (c *SheetServiceClient) ClearMessages(
	ctx context.Context, in *ClearMessagesRequest, opts ...grpc.CallOption,
) (*ClearMessagesResponse, error) {
	return invoke[ClearMessagesRequest, ClearMessagesResponse](ctx, c, MethodClearMessages, in, opts)
}
