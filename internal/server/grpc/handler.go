package grpc

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/streamcast/user-service/internal/common"
	pb "github.com/streamcast/user-service/internal/proto"
	"github.com/streamcast/user-service/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// The RPC surface reports outcomes inside the response Status message rather
// than as gRPC errors, so callers handle "not found" without unpacking
// status codes.

func okStatus(message string) *pb.Status {
	return &pb.Status{Code: 200, Message: message, Success: true}
}

func failStatus(code int32, message string) *pb.Status {
	return &pb.Status{Code: code, Message: message, Success: false}
}

func userToProto(u *models.User) *pb.User {
	status := pb.UserStatus_USER_STATUS_OFFLINE
	if u.IsActive {
		status = pb.UserStatus_USER_STATUS_ONLINE
	}
	lastSeen := u.UpdatedAt
	if lastSeen.IsZero() {
		lastSeen = u.CreatedAt
	}
	return &pb.User{
		Id:          strconv.FormatInt(u.ID, 10),
		Username:    u.UserName,
		Email:       u.Email,
		DisplayName: strings.TrimSpace(u.FirstName + " " + u.LastName),
		AvatarUrl:   u.ProfileImageURL,
		Status:      status,
		CreatedAt:   timestamppb.New(u.CreatedAt),
		LastSeen:    timestamppb.New(lastSeen),
	}
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	id, err := strconv.ParseInt(req.UserId, 10, 64)
	if err != nil {
		return &pb.GetUserResponse{Status: failStatus(400, "Invalid user ID format")}, nil
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return &pb.GetUserResponse{Status: failStatus(404, "User not found")}, nil
		}
		s.logger.Error(ctx, "GetUser failed", "error", err)
		return &pb.GetUserResponse{Status: failStatus(500, "Internal server error")}, nil
	}

	return &pb.GetUserResponse{
		Status: okStatus("User retrieved successfully"),
		User:   userToProto(user),
	}, nil
}

// GetUsers resolves a batch of ids, silently skipping malformed or unknown
// ones. An empty id list returns the first page of all users.
func (s *GRPCServer) GetUsers(ctx context.Context, req *pb.GetUsersRequest) (*pb.GetUsersResponse, error) {
	var out []*pb.User

	if len(req.UserIds) > 0 {
		for _, idStr := range req.UserIds {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				continue
			}
			user, err := s.users.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, common.ErrUserNotFound) {
					continue
				}
				s.logger.Error(ctx, "GetUsers failed", "error", err)
				return &pb.GetUsersResponse{Status: failStatus(500, "Internal server error")}, nil
			}
			out = append(out, userToProto(user))
		}
	} else {
		list, err := s.users.List(ctx, 0, 100)
		if err != nil {
			s.logger.Error(ctx, "GetUsers failed", "error", err)
			return &pb.GetUsersResponse{Status: failStatus(500, "Internal server error")}, nil
		}
		for _, user := range list {
			out = append(out, userToProto(user))
		}
	}

	return &pb.GetUsersResponse{
		Status: okStatus("Users retrieved successfully"),
		Users:  out,
	}, nil
}

// ValidateUser confirms an account exists and is active. When the caller
// forwards an access token it must verify and belong to the same account.
func (s *GRPCServer) ValidateUser(ctx context.Context, req *pb.ValidateUserRequest) (*pb.ValidateUserResponse, error) {
	id, err := strconv.ParseInt(req.UserId, 10, 64)
	if err != nil {
		return &pb.ValidateUserResponse{Status: failStatus(400, "Invalid user ID format")}, nil
	}

	if req.AccessToken != "" {
		tokenUserID, err := s.auth.ParseAccessToken(req.AccessToken)
		if err != nil || tokenUserID != id {
			return &pb.ValidateUserResponse{Status: failStatus(401, "Invalid or inactive user")}, nil
		}
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return &pb.ValidateUserResponse{Status: failStatus(401, "Invalid or inactive user")}, nil
		}
		s.logger.Error(ctx, "ValidateUser failed", "error", err)
		return &pb.ValidateUserResponse{Status: failStatus(500, "Internal server error")}, nil
	}
	if !user.IsActive {
		return &pb.ValidateUserResponse{Status: failStatus(401, "Invalid or inactive user")}, nil
	}

	return &pb.ValidateUserResponse{
		Status:  okStatus("User validated successfully"),
		IsValid: true,
		User:    userToProto(user),
	}, nil
}

func (s *GRPCServer) ValidateStreamKey(ctx context.Context, req *pb.ValidateStreamKeyRequest) (*pb.ValidateStreamKeyResponse, error) {
	user, err := s.users.ValidateStreamKey(ctx, req.StreamKey)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return &pb.ValidateStreamKeyResponse{Status: failStatus(404, "Invalid stream key")}, nil
		case errors.Is(err, common.ErrInactiveUser):
			return &pb.ValidateStreamKeyResponse{Status: failStatus(401, "User account is inactive")}, nil
		default:
			s.logger.Error(ctx, "ValidateStreamKey failed", "error", err)
			return &pb.ValidateStreamKeyResponse{Status: failStatus(500, "Internal server error")}, nil
		}
	}

	s.logger.Info(ctx, "stream key validated", "user_id", user.ID, "ip_address", req.IpAddress)

	return &pb.ValidateStreamKeyResponse{
		Status: okStatus("Stream key is valid"),
		Valid:  true,
		User:   userToProto(user),
	}, nil
}

// UpdateUserStatus flips the account's active flag. OFFLINE deactivates,
// anything else reactivates.
func (s *GRPCServer) UpdateUserStatus(ctx context.Context, req *pb.UpdateUserStatusRequest) (*pb.UpdateUserStatusResponse, error) {
	id, err := strconv.ParseInt(req.UserId, 10, 64)
	if err != nil {
		return &pb.UpdateUserStatusResponse{Status: failStatus(400, "Invalid user ID format")}, nil
	}

	active := req.Status != pb.UserStatus_USER_STATUS_OFFLINE

	if err := s.users.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return &pb.UpdateUserStatusResponse{Status: failStatus(404, "User not found")}, nil
		}
		s.logger.Error(ctx, "UpdateUserStatus failed", "error", err)
		return &pb.UpdateUserStatusResponse{Status: failStatus(500, "Internal server error")}, nil
	}

	return &pb.UpdateUserStatusResponse{Status: okStatus("User status updated successfully")}, nil
}
