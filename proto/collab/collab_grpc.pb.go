// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: collab.proto

package collab

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CollabService_Connect_FullMethodName       = "/collab.v1.CollabService/Connect"
	CollabService_CreateEpic_FullMethodName    = "/collab.v1.CollabService/CreateEpic"
	CollabService_ListEpics_FullMethodName     = "/collab.v1.CollabService/ListEpics"
	CollabService_DeleteEpic_FullMethodName    = "/collab.v1.CollabService/DeleteEpic"
	CollabService_CreateStory_FullMethodName   = "/collab.v1.CollabService/CreateStory"
	CollabService_UpdateStory_FullMethodName   = "/collab.v1.CollabService/UpdateStory"
	CollabService_MoveStory_FullMethodName     = "/collab.v1.CollabService/MoveStory"
	CollabService_DeleteStory_FullMethodName   = "/collab.v1.CollabService/DeleteStory"
	CollabService_GetStory_FullMethodName      = "/collab.v1.CollabService/GetStory"
	CollabService_GetBoard_FullMethodName      = "/collab.v1.CollabService/GetBoard"
	CollabService_SearchStories_FullMethodName = "/collab.v1.CollabService/SearchStories"
	CollabService_AnalyzeStory_FullMethodName  = "/collab.v1.CollabService/AnalyzeStory"
	CollabService_ProposeSplit_FullMethodName  = "/collab.v1.CollabService/ProposeSplit"
	CollabService_ApplySplit_FullMethodName    = "/collab.v1.CollabService/ApplySplit"
	CollabService_GetFeedback_FullMethodName   = "/collab.v1.CollabService/GetFeedback"
	CollabService_StartTyping_FullMethodName   = "/collab.v1.CollabService/StartTyping"
	CollabService_StopTyping_FullMethodName    = "/collab.v1.CollabService/StopTyping"
)

// CollabServiceClient is the client API for CollabService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CollabService is the real-time collaboration surface.
// Connect opens a long-lived stream bound to a board channel;
// every accepted mutation comes back through that stream.
type CollabServiceClient interface {
	Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[BoardEvent], error)
	CreateEpic(ctx context.Context, in *CreateEpicRequest, opts ...grpc.CallOption) (*EpicResponse, error)
	ListEpics(ctx context.Context, in *ListEpicsRequest, opts ...grpc.CallOption) (*ListEpicsResponse, error)
	DeleteEpic(ctx context.Context, in *DeleteEpicRequest, opts ...grpc.CallOption) (*DeleteEpicResponse, error)
	CreateStory(ctx context.Context, in *CreateStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error)
	UpdateStory(ctx context.Context, in *UpdateStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error)
	MoveStory(ctx context.Context, in *MoveStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error)
	DeleteStory(ctx context.Context, in *DeleteStoryRequest, opts ...grpc.CallOption) (*DeleteStoryResponse, error)
	GetStory(ctx context.Context, in *GetStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error)
	GetBoard(ctx context.Context, in *GetBoardRequest, opts ...grpc.CallOption) (*GetBoardResponse, error)
	SearchStories(ctx context.Context, in *SearchStoriesRequest, opts ...grpc.CallOption) (*SearchStoriesResponse, error)
	AnalyzeStory(ctx context.Context, in *AnalyzeStoryRequest, opts ...grpc.CallOption) (*FeedbackResponse, error)
	ProposeSplit(ctx context.Context, in *ProposeSplitRequest, opts ...grpc.CallOption) (*SplitProposalResponse, error)
	ApplySplit(ctx context.Context, in *ApplySplitRequest, opts ...grpc.CallOption) (*ApplySplitResponse, error)
	GetFeedback(ctx context.Context, in *GetFeedbackRequest, opts ...grpc.CallOption) (*GetFeedbackResponse, error)
	StartTyping(ctx context.Context, in *TypingRequest, opts ...grpc.CallOption) (*TypingResponse, error)
	StopTyping(ctx context.Context, in *TypingRequest, opts ...grpc.CallOption) (*TypingResponse, error)
}

type collabServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCollabServiceClient(cc grpc.ClientConnInterface) CollabServiceClient {
	return &collabServiceClient{cc}
}

func (c *collabServiceClient) Connect(ctx context.Context, in *ConnectRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[BoardEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &CollabService_ServiceDesc.Streams[0], CollabService_Connect_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ConnectRequest, BoardEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type CollabService_ConnectClient = grpc.ServerStreamingClient[BoardEvent]

func (c *collabServiceClient) CreateEpic(ctx context.Context, in *CreateEpicRequest, opts ...grpc.CallOption) (*EpicResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EpicResponse)
	err := c.cc.Invoke(ctx, CollabService_CreateEpic_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) ListEpics(ctx context.Context, in *ListEpicsRequest, opts ...grpc.CallOption) (*ListEpicsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEpicsResponse)
	err := c.cc.Invoke(ctx, CollabService_ListEpics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) DeleteEpic(ctx context.Context, in *DeleteEpicRequest, opts ...grpc.CallOption) (*DeleteEpicResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteEpicResponse)
	err := c.cc.Invoke(ctx, CollabService_DeleteEpic_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) CreateStory(ctx context.Context, in *CreateStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StoryResponse)
	err := c.cc.Invoke(ctx, CollabService_CreateStory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) UpdateStory(ctx context.Context, in *UpdateStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StoryResponse)
	err := c.cc.Invoke(ctx, CollabService_UpdateStory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) MoveStory(ctx context.Context, in *MoveStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StoryResponse)
	err := c.cc.Invoke(ctx, CollabService_MoveStory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) DeleteStory(ctx context.Context, in *DeleteStoryRequest, opts ...grpc.CallOption) (*DeleteStoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteStoryResponse)
	err := c.cc.Invoke(ctx, CollabService_DeleteStory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) GetStory(ctx context.Context, in *GetStoryRequest, opts ...grpc.CallOption) (*StoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StoryResponse)
	err := c.cc.Invoke(ctx, CollabService_GetStory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) GetBoard(ctx context.Context, in *GetBoardRequest, opts ...grpc.CallOption) (*GetBoardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBoardResponse)
	err := c.cc.Invoke(ctx, CollabService_GetBoard_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) SearchStories(ctx context.Context, in *SearchStoriesRequest, opts ...grpc.CallOption) (*SearchStoriesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchStoriesResponse)
	err := c.cc.Invoke(ctx, CollabService_SearchStories_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) AnalyzeStory(ctx context.Context, in *AnalyzeStoryRequest, opts ...grpc.CallOption) (*FeedbackResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FeedbackResponse)
	err := c.cc.Invoke(ctx, CollabService_AnalyzeStory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) ProposeSplit(ctx context.Context, in *ProposeSplitRequest, opts ...grpc.CallOption) (*SplitProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SplitProposalResponse)
	err := c.cc.Invoke(ctx, CollabService_ProposeSplit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) ApplySplit(ctx context.Context, in *ApplySplitRequest, opts ...grpc.CallOption) (*ApplySplitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplySplitResponse)
	err := c.cc.Invoke(ctx, CollabService_ApplySplit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) GetFeedback(ctx context.Context, in *GetFeedbackRequest, opts ...grpc.CallOption) (*GetFeedbackResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFeedbackResponse)
	err := c.cc.Invoke(ctx, CollabService_GetFeedback_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) StartTyping(ctx context.Context, in *TypingRequest, opts ...grpc.CallOption) (*TypingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TypingResponse)
	err := c.cc.Invoke(ctx, CollabService_StartTyping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collabServiceClient) StopTyping(ctx context.Context, in *TypingRequest, opts ...grpc.CallOption) (*TypingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TypingResponse)
	err := c.cc.Invoke(ctx, CollabService_StopTyping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CollabServiceServer is the server API for CollabService service.
// All implementations must embed UnimplementedCollabServiceServer
// for forward compatibility.
//
// CollabService is the real-time collaboration surface.
// Connect opens a long-lived stream bound to a board channel;
// every accepted mutation comes back through that stream.
type CollabServiceServer interface {
	Connect(*ConnectRequest, grpc.ServerStreamingServer[BoardEvent]) error
	CreateEpic(context.Context, *CreateEpicRequest) (*EpicResponse, error)
	ListEpics(context.Context, *ListEpicsRequest) (*ListEpicsResponse, error)
	DeleteEpic(context.Context, *DeleteEpicRequest) (*DeleteEpicResponse, error)
	CreateStory(context.Context, *CreateStoryRequest) (*StoryResponse, error)
	UpdateStory(context.Context, *UpdateStoryRequest) (*StoryResponse, error)
	MoveStory(context.Context, *MoveStoryRequest) (*StoryResponse, error)
	DeleteStory(context.Context, *DeleteStoryRequest) (*DeleteStoryResponse, error)
	GetStory(context.Context, *GetStoryRequest) (*StoryResponse, error)
	GetBoard(context.Context, *GetBoardRequest) (*GetBoardResponse, error)
	SearchStories(context.Context, *SearchStoriesRequest) (*SearchStoriesResponse, error)
	AnalyzeStory(context.Context, *AnalyzeStoryRequest) (*FeedbackResponse, error)
	ProposeSplit(context.Context, *ProposeSplitRequest) (*SplitProposalResponse, error)
	ApplySplit(context.Context, *ApplySplitRequest) (*ApplySplitResponse, error)
	GetFeedback(context.Context, *GetFeedbackRequest) (*GetFeedbackResponse, error)
	StartTyping(context.Context, *TypingRequest) (*TypingResponse, error)
	StopTyping(context.Context, *TypingRequest) (*TypingResponse, error)
	mustEmbedUnimplementedCollabServiceServer()
}

// UnimplementedCollabServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCollabServiceServer struct{}

func (UnimplementedCollabServiceServer) Connect(*ConnectRequest, grpc.ServerStreamingServer[BoardEvent]) error {
	return status.Errorf(codes.Unimplemented, "method Connect not implemented")
}
func (UnimplementedCollabServiceServer) CreateEpic(context.Context, *CreateEpicRequest) (*EpicResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateEpic not implemented")
}
func (UnimplementedCollabServiceServer) ListEpics(context.Context, *ListEpicsRequest) (*ListEpicsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEpics not implemented")
}
func (UnimplementedCollabServiceServer) DeleteEpic(context.Context, *DeleteEpicRequest) (*DeleteEpicResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteEpic not implemented")
}
func (UnimplementedCollabServiceServer) CreateStory(context.Context, *CreateStoryRequest) (*StoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateStory not implemented")
}
func (UnimplementedCollabServiceServer) UpdateStory(context.Context, *UpdateStoryRequest) (*StoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateStory not implemented")
}
func (UnimplementedCollabServiceServer) MoveStory(context.Context, *MoveStoryRequest) (*StoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MoveStory not implemented")
}
func (UnimplementedCollabServiceServer) DeleteStory(context.Context, *DeleteStoryRequest) (*DeleteStoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteStory not implemented")
}
func (UnimplementedCollabServiceServer) GetStory(context.Context, *GetStoryRequest) (*StoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStory not implemented")
}
func (UnimplementedCollabServiceServer) GetBoard(context.Context, *GetBoardRequest) (*GetBoardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBoard not implemented")
}
func (UnimplementedCollabServiceServer) SearchStories(context.Context, *SearchStoriesRequest) (*SearchStoriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchStories not implemented")
}
func (UnimplementedCollabServiceServer) AnalyzeStory(context.Context, *AnalyzeStoryRequest) (*FeedbackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeStory not implemented")
}
func (UnimplementedCollabServiceServer) ProposeSplit(context.Context, *ProposeSplitRequest) (*SplitProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProposeSplit not implemented")
}
func (UnimplementedCollabServiceServer) ApplySplit(context.Context, *ApplySplitRequest) (*ApplySplitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApplySplit not implemented")
}
func (UnimplementedCollabServiceServer) GetFeedback(context.Context, *GetFeedbackRequest) (*GetFeedbackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFeedback not implemented")
}
func (UnimplementedCollabServiceServer) StartTyping(context.Context, *TypingRequest) (*TypingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartTyping not implemented")
}
func (UnimplementedCollabServiceServer) StopTyping(context.Context, *TypingRequest) (*TypingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StopTyping not implemented")
}
func (UnimplementedCollabServiceServer) mustEmbedUnimplementedCollabServiceServer() {}
func (UnimplementedCollabServiceServer) testEmbeddedByValue()                       {}

// UnsafeCollabServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CollabServiceServer will
// result in compilation errors.
type UnsafeCollabServiceServer interface {
	mustEmbedUnimplementedCollabServiceServer()
}

func RegisterCollabServiceServer(s grpc.ServiceRegistrar, srv CollabServiceServer) {
	// If the following call pancis, it indicates UnimplementedCollabServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CollabService_ServiceDesc, srv)
}

func _CollabService_Connect_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ConnectRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(CollabServiceServer).Connect(m, &grpc.GenericServerStream[ConnectRequest, BoardEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type CollabService_ConnectServer = grpc.ServerStreamingServer[BoardEvent]

func _CollabService_CreateEpic_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateEpicRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).CreateEpic(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_CreateEpic_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).CreateEpic(ctx, req.(*CreateEpicRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_ListEpics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEpicsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).ListEpics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_ListEpics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).ListEpics(ctx, req.(*ListEpicsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_DeleteEpic_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEpicRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).DeleteEpic(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_DeleteEpic_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).DeleteEpic(ctx, req.(*DeleteEpicRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_CreateStory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateStoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).CreateStory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_CreateStory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).CreateStory(ctx, req.(*CreateStoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_UpdateStory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateStoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).UpdateStory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_UpdateStory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).UpdateStory(ctx, req.(*UpdateStoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_MoveStory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MoveStoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).MoveStory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_MoveStory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).MoveStory(ctx, req.(*MoveStoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_DeleteStory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteStoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).DeleteStory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_DeleteStory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).DeleteStory(ctx, req.(*DeleteStoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_GetStory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).GetStory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_GetStory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).GetStory(ctx, req.(*GetStoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_GetBoard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBoardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).GetBoard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_GetBoard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).GetBoard(ctx, req.(*GetBoardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_SearchStories_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchStoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).SearchStories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_SearchStories_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).SearchStories(ctx, req.(*SearchStoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_AnalyzeStory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeStoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).AnalyzeStory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_AnalyzeStory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).AnalyzeStory(ctx, req.(*AnalyzeStoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_ProposeSplit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProposeSplitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).ProposeSplit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_ProposeSplit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).ProposeSplit(ctx, req.(*ProposeSplitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_ApplySplit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplySplitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).ApplySplit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_ApplySplit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).ApplySplit(ctx, req.(*ApplySplitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_GetFeedback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFeedbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).GetFeedback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_GetFeedback_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).GetFeedback(ctx, req.(*GetFeedbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_StartTyping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TypingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).StartTyping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_StartTyping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).StartTyping(ctx, req.(*TypingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollabService_StopTyping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TypingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollabServiceServer).StopTyping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollabService_StopTyping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollabServiceServer).StopTyping(ctx, req.(*TypingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CollabService_ServiceDesc is the grpc.ServiceDesc for CollabService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CollabService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collab.v1.CollabService",
	HandlerType: (*CollabServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateEpic",
			Handler:    _CollabService_CreateEpic_Handler,
		},
		{
			MethodName: "ListEpics",
			Handler:    _CollabService_ListEpics_Handler,
		},
		{
			MethodName: "DeleteEpic",
			Handler:    _CollabService_DeleteEpic_Handler,
		},
		{
			MethodName: "CreateStory",
			Handler:    _CollabService_CreateStory_Handler,
		},
		{
			MethodName: "UpdateStory",
			Handler:    _CollabService_UpdateStory_Handler,
		},
		{
			MethodName: "MoveStory",
			Handler:    _CollabService_MoveStory_Handler,
		},
		{
			MethodName: "DeleteStory",
			Handler:    _CollabService_DeleteStory_Handler,
		},
		{
			MethodName: "GetStory",
			Handler:    _CollabService_GetStory_Handler,
		},
		{
			MethodName: "GetBoard",
			Handler:    _CollabService_GetBoard_Handler,
		},
		{
			MethodName: "SearchStories",
			Handler:    _CollabService_SearchStories_Handler,
		},
		{
			MethodName: "AnalyzeStory",
			Handler:    _CollabService_AnalyzeStory_Handler,
		},
		{
			MethodName: "ProposeSplit",
			Handler:    _CollabService_ProposeSplit_Handler,
		},
		{
			MethodName: "ApplySplit",
			Handler:    _CollabService_ApplySplit_Handler,
		},
		{
			MethodName: "GetFeedback",
			Handler:    _CollabService_GetFeedback_Handler,
		},
		{
			MethodName: "StartTyping",
			Handler:    _CollabService_StartTyping_Handler,
		},
		{
			MethodName: "StopTyping",
			Handler:    _CollabService_StopTyping_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Connect",
			Handler:       _CollabService_Connect_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "collab.proto",
}
