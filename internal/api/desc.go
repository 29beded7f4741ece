package api

import (
	"context"

	"google.golang.org/grpc"
)

// Fully-qualified service names.
const (
	SessionServiceName = "wave.v1.SessionService"
	ChatServiceName    = "wave.v1.ChatService"
	MessageServiceName = "wave.v1.MessageService"
	FeedServiceName    = "wave.v1.FeedService"
)

// SessionServer is the server API for wave.v1.SessionService.
type SessionServer interface {
	GetStatus(context.Context, *Empty) (*GetStatusResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *Empty) (*LogoutResponse, error)
	GetTheme(context.Context, *Empty) (*ThemeResponse, error)
	SetTheme(context.Context, *SetThemeRequest) (*ThemeResponse, error)
	ToggleTheme(context.Context, *Empty) (*ThemeResponse, error)
}

// ChatServer is the server API for wave.v1.ChatService.
type ChatServer interface {
	ListChats(context.Context, *Empty) (*ListChatsResponse, error)
	GetChat(context.Context, *GetChatRequest) (*ChatResponse, error)
	NewChat(context.Context, *Empty) (*ChatResponse, error)
}

// MessageServer is the server API for wave.v1.MessageService.
type MessageServer interface {
	ListMessages(context.Context, *ListMessagesRequest) (*ListMessagesResponse, error)
	SendText(context.Context, *SendTextRequest) (*SendTextResponse, error)
	WatchMessages(*WatchMessagesRequest, MessageStream) error
}

// MessageStream is the server side of WatchMessages.
type MessageStream interface {
	Send(*MessageEvent) error
	Context() context.Context
}

// FeedServer is the server API for wave.v1.FeedService.
type FeedServer interface {
	ListPosts(context.Context, *Empty) (*ListPostsResponse, error)
	ListReels(context.Context, *Empty) (*ListReelsResponse, error)
	ListNews(context.Context, *Empty) (*ListNewsResponse, error)
	ListServices(context.Context, *ListServicesRequest) (*ListServicesResponse, error)
	ListAds(context.Context, *Empty) (*ListAdsResponse, error)
	ToggleLike(context.Context, *ToggleLikeRequest) (*ToggleLikeResponse, error)
	GetProfile(context.Context, *Empty) (*ProfileResponse, error)
}

// unary builds a method descriptor that decodes Req, runs interceptors and
// dispatches to the typed handler on S.
func unary[S, Req, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			})
		},
	}
}

var SessionServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionServiceName,
	HandlerType: (*SessionServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(SessionServiceName, "GetStatus", SessionServer.GetStatus),
		unary(SessionServiceName, "Login", SessionServer.Login),
		unary(SessionServiceName, "Logout", SessionServer.Logout),
		unary(SessionServiceName, "GetTheme", SessionServer.GetTheme),
		unary(SessionServiceName, "SetTheme", SessionServer.SetTheme),
		unary(SessionServiceName, "ToggleTheme", SessionServer.ToggleTheme),
	},
}

var ChatServiceDesc = grpc.ServiceDesc{
	ServiceName: ChatServiceName,
	HandlerType: (*ChatServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ChatServiceName, "ListChats", ChatServer.ListChats),
		unary(ChatServiceName, "GetChat", ChatServer.GetChat),
		unary(ChatServiceName, "NewChat", ChatServer.NewChat),
	},
}

var MessageServiceDesc = grpc.ServiceDesc{
	ServiceName: MessageServiceName,
	HandlerType: (*MessageServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MessageServiceName, "ListMessages", MessageServer.ListMessages),
		unary(MessageServiceName, "SendText", MessageServer.SendText),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchMessages",
			Handler:       watchMessagesHandler,
			ServerStreams: true,
		},
	},
}

func watchMessagesHandler(srv any, stream grpc.ServerStream) error {
	in := new(WatchMessagesRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(MessageServer).WatchMessages(in, &messageStream{stream})
}

type messageStream struct {
	grpc.ServerStream
}

func (s *messageStream) Send(evt *MessageEvent) error {
	return s.ServerStream.SendMsg(evt)
}

var FeedServiceDesc = grpc.ServiceDesc{
	ServiceName: FeedServiceName,
	HandlerType: (*FeedServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(FeedServiceName, "ListPosts", FeedServer.ListPosts),
		unary(FeedServiceName, "ListReels", FeedServer.ListReels),
		unary(FeedServiceName, "ListNews", FeedServer.ListNews),
		unary(FeedServiceName, "ListServices", FeedServer.ListServices),
		unary(FeedServiceName, "ListAds", FeedServer.ListAds),
		unary(FeedServiceName, "ToggleLike", FeedServer.ToggleLike),
		unary(FeedServiceName, "GetProfile", FeedServer.GetProfile),
	},
}

// Register attaches every wave.v1 service to srv.
func Register(srv grpc.ServiceRegistrar, session SessionServer, chat ChatServer, message MessageServer, feed FeedServer) {
	srv.RegisterService(&SessionServiceDesc, session)
	srv.RegisterService(&ChatServiceDesc, chat)
	srv.RegisterService(&MessageServiceDesc, message)
	srv.RegisterService(&FeedServiceDesc, feed)
}

var (
	_ SessionServer = (*SessionService)(nil)
	_ ChatServer    = (*ChatService)(nil)
	_ MessageServer = (*MessageService)(nil)
	_ FeedServer    = (*FeedService)(nil)
)
