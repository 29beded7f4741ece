package api

import (
	"context"

	"google.golang.org/grpc"
)

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SessionClient is the client API for wave.v1.SessionService.
type SessionClient struct {
	cc grpc.ClientConnInterface
}

func NewSessionClient(cc grpc.ClientConnInterface) *SessionClient { return &SessionClient{cc} }

func (c *SessionClient) GetStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	return invoke[GetStatusResponse](ctx, c.cc, "/"+SessionServiceName+"/GetStatus", in, opts)
}

func (c *SessionClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, "/"+SessionServiceName+"/Login", in, opts)
}

func (c *SessionClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, "/"+SessionServiceName+"/Logout", in, opts)
}

func (c *SessionClient) GetTheme(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ThemeResponse, error) {
	return invoke[ThemeResponse](ctx, c.cc, "/"+SessionServiceName+"/GetTheme", in, opts)
}

func (c *SessionClient) SetTheme(ctx context.Context, in *SetThemeRequest, opts ...grpc.CallOption) (*ThemeResponse, error) {
	return invoke[ThemeResponse](ctx, c.cc, "/"+SessionServiceName+"/SetTheme", in, opts)
}

func (c *SessionClient) ToggleTheme(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ThemeResponse, error) {
	return invoke[ThemeResponse](ctx, c.cc, "/"+SessionServiceName+"/ToggleTheme", in, opts)
}

// ChatClient is the client API for wave.v1.ChatService.
type ChatClient struct {
	cc grpc.ClientConnInterface
}

func NewChatClient(cc grpc.ClientConnInterface) *ChatClient { return &ChatClient{cc} }

func (c *ChatClient) ListChats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListChatsResponse, error) {
	return invoke[ListChatsResponse](ctx, c.cc, "/"+ChatServiceName+"/ListChats", in, opts)
}

func (c *ChatClient) GetChat(ctx context.Context, in *GetChatRequest, opts ...grpc.CallOption) (*ChatResponse, error) {
	return invoke[ChatResponse](ctx, c.cc, "/"+ChatServiceName+"/GetChat", in, opts)
}

func (c *ChatClient) NewChat(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ChatResponse, error) {
	return invoke[ChatResponse](ctx, c.cc, "/"+ChatServiceName+"/NewChat", in, opts)
}

// MessageClient is the client API for wave.v1.MessageService.
type MessageClient struct {
	cc grpc.ClientConnInterface
}

func NewMessageClient(cc grpc.ClientConnInterface) *MessageClient { return &MessageClient{cc} }

func (c *MessageClient) ListMessages(ctx context.Context, in *ListMessagesRequest, opts ...grpc.CallOption) (*ListMessagesResponse, error) {
	return invoke[ListMessagesResponse](ctx, c.cc, "/"+MessageServiceName+"/ListMessages", in, opts)
}

func (c *MessageClient) SendText(ctx context.Context, in *SendTextRequest, opts ...grpc.CallOption) (*SendTextResponse, error) {
	return invoke[SendTextResponse](ctx, c.cc, "/"+MessageServiceName+"/SendText", in, opts)
}

// MessageWatcher receives events from a WatchMessages stream.
type MessageWatcher struct {
	grpc.ClientStream
}

func (w *MessageWatcher) Recv() (*MessageEvent, error) {
	evt := new(MessageEvent)
	if err := w.ClientStream.RecvMsg(evt); err != nil {
		return nil, err
	}
	return evt, nil
}

func (c *MessageClient) WatchMessages(ctx context.Context, in *WatchMessagesRequest, opts ...grpc.CallOption) (*MessageWatcher, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &MessageServiceDesc.Streams[0], "/"+MessageServiceName+"/WatchMessages", opts...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &MessageWatcher{stream}, nil
}

// FeedClient is the client API for wave.v1.FeedService.
type FeedClient struct {
	cc grpc.ClientConnInterface
}

func NewFeedClient(cc grpc.ClientConnInterface) *FeedClient { return &FeedClient{cc} }

func (c *FeedClient) ListPosts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListPostsResponse, error) {
	return invoke[ListPostsResponse](ctx, c.cc, "/"+FeedServiceName+"/ListPosts", in, opts)
}

func (c *FeedClient) ListReels(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListReelsResponse, error) {
	return invoke[ListReelsResponse](ctx, c.cc, "/"+FeedServiceName+"/ListReels", in, opts)
}

func (c *FeedClient) ListNews(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListNewsResponse, error) {
	return invoke[ListNewsResponse](ctx, c.cc, "/"+FeedServiceName+"/ListNews", in, opts)
}

func (c *FeedClient) ListServices(ctx context.Context, in *ListServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	return invoke[ListServicesResponse](ctx, c.cc, "/"+FeedServiceName+"/ListServices", in, opts)
}

func (c *FeedClient) ListAds(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListAdsResponse, error) {
	return invoke[ListAdsResponse](ctx, c.cc, "/"+FeedServiceName+"/ListAds", in, opts)
}

func (c *FeedClient) ToggleLike(ctx context.Context, in *ToggleLikeRequest, opts ...grpc.CallOption) (*ToggleLikeResponse, error) {
	return invoke[ToggleLikeResponse](ctx, c.cc, "/"+FeedServiceName+"/ToggleLike", in, opts)
}

func (c *FeedClient) GetProfile(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, "/"+FeedServiceName+"/GetProfile", in, opts)
}
