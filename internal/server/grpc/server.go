// Package grpc exposes the internal RPC surface consumed by the other
// platform services (chat, stream management). It is meant for the trusted
// network, not for end users.
package grpc

import (
	"context"
	"net"

	"github.com/streamcast/user-service/internal/logging"
	pb "github.com/streamcast/user-service/internal/proto"
	"github.com/streamcast/user-service/internal/server/models"
	"google.golang.org/grpc"
)

type authSvc interface {
	ParseAccessToken(tokenString string) (int64, error)
}

type userSvc interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
	ValidateStreamKey(ctx context.Context, streamKey string) (*models.User, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address string
	logger  logging.Logger
	auth    authSvc
	users   userSvc
}

func NewGRPCServer(a string, l logging.Logger, auth authSvc, users userSvc) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    auth,
		users:   users,
	}
}

// Run serves until ctx is cancelled, then drains in-flight calls.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	pb.RegisterUserServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
