// Package proto holds the wire contract. Generated code lands in
// proto/collab, proto/account and proto/storage and is not committed.
package proto

//go:generate protoc --go_out=.. --go-grpc_out=.. --proto_path=. collab.proto
//go:generate protoc --go_out=.. --go-grpc_out=.. --proto_path=. account.proto
//go:generate protoc --go_out=.. --proto_path=. storage.proto
