// Package proto holds the invoker gRPC contract. The generated stubs are
// not committed; regenerate after editing invoker.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative invoker.proto
