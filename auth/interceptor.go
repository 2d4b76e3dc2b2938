package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "storysplit/proto/account"
)

// Map of methods that do not require JWT authentication.
// Using generated constants from the proto package for type-safety.
var publicMethods = map[string]struct{}{
	pb.AccountService_Login_FullMethodName:    {},
	pb.AccountService_Register_FullMethodName: {},
}

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	DisplayNameKey contextKey = "display_name"
	RolesKey       contextKey = "roles"
)

// UnaryAuthInterceptor handles JWT validation for incoming unary gRPC calls.
func UnaryAuthInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	// Skip authentication for public methods (Login/Register)
	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	newCtx, err := authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return handler(newCtx, req)
}

// StreamAuthInterceptor authenticates streaming calls. Connect streams
// carry the identity in the same Authorization header as unary calls.
func StreamAuthInterceptor(srv any, ss grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	newCtx, err := authenticate(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &authenticatedStream{ServerStream: ss, ctx: newCtx})
}

// authenticate extracts the bearer token, validates it, and returns a
// context enriched with the caller's identity.
func authenticate(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	// Expecting the standard "Bearer <token>" format
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")

	claims, err := ValidateToken(tokenStr)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}

	newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
	newCtx = context.WithValue(newCtx, DisplayNameKey, claims.DisplayName)
	newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)
	return newCtx, nil
}

// isPublicMethod checks if the current gRPC method is allowed without a token.
func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}

// authenticatedStream overrides Context so downstream handlers see the
// enriched identity.
type authenticatedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authenticatedStream) Context() context.Context {
	return s.ctx
}
