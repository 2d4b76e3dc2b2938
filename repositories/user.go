//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	"storysplit/errors"
	pb "storysplit/proto/account"
)

type IUserRepository interface {
	CreateUser(email, displayName, hashedPassword string) (string, error)
	GetUserByEmail(email string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the domain-friendly representation of an account in the
// repository layer.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// CreateUser persists the account under "user:{email}" and returns the
// newly generated user ID. The existence check and the write share one
// transaction so duplicate registrations cannot race.
func (u UserRepository) CreateUser(email, displayName, hashedPassword string) (string, error) {
	newID := uuid.New().String()
	userPb := &pb.User{
		Id:           newID,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().Unix(),
		Roles:        []string{"user"},
	}

	data, err := proto.Marshal(userPb)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := []byte("user:" + email)
		if _, err = txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})

	return newID, err
}

func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var userPb pb.User

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + email))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &userPb)
		})
	})
	if err != nil {
		return User{}, err
	}

	return toUserStruct(&userPb), nil
}

func toUserStruct(pbUser *pb.User) User {
	return User{
		ID:           pbUser.Id,
		Email:        pbUser.Email,
		DisplayName:  pbUser.DisplayName,
		PasswordHash: pbUser.PasswordHash,
		Roles:        pbUser.Roles,
		CreatedAt:    time.Unix(pbUser.CreatedAt, 0).UTC(),
	}
}
