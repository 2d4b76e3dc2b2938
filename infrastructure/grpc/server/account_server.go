package server

import (
	"context"
	"log/slog"

	"storysplit/errors"
	pb "storysplit/proto/account"
	"storysplit/services"
)

type AccountServer struct {
	pb.UnimplementedAccountServiceServer
	authService services.IAuthService
	log         *slog.Logger
}

func NewAccountServer(log *slog.Logger, authService services.IAuthService) *AccountServer {
	return &AccountServer{authService: authService, log: log}
}

func (s *AccountServer) Register(_ context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Register(req.Email, req.DisplayName, req.Password)
	if err != nil {
		s.log.Warn("Registration refused", "email", req.Email, "error", err)
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: string(token)}, nil
}

func (s *AccountServer) Login(_ context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Login(req.Email, req.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthResponse{Token: string(token)}, nil
}
