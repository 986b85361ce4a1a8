// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: invoker.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"` // "user" | "assistant" | "system"
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_invoker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_invoker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_invoker_proto_rawDescGZIP(), []int{0}
}

func (x *ChatMessage) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type InvokeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`                               // "main" | "fast" | "judge" | "processor"
	System        string                 `protobuf:"bytes,2,opt,name=system,proto3" json:"system,omitempty"`                           // system prompt
	Messages      []*ChatMessage         `protobuf:"bytes,3,rep,name=messages,proto3" json:"messages,omitempty"`                       // prior conversation context
	User          string                 `protobuf:"bytes,4,opt,name=user,proto3" json:"user,omitempty"`                               // current user-side payload
	SchemaJson    string                 `protobuf:"bytes,5,opt,name=schema_json,json=schemaJson,proto3" json:"schema_json,omitempty"` // optional JSON Schema for the reply
	TurnId        string                 `protobuf:"bytes,6,opt,name=turn_id,json=turnId,proto3" json:"turn_id,omitempty"`             // correlation id for server-side logs
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvokeRequest) Reset() {
	*x = InvokeRequest{}
	mi := &file_invoker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvokeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvokeRequest) ProtoMessage() {}

func (x *InvokeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvokeRequest.ProtoReflect.Descriptor instead.
func (*InvokeRequest) Descriptor() ([]byte, []int) {
	return file_invoker_proto_rawDescGZIP(), []int{1}
}

func (x *InvokeRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *InvokeRequest) GetSystem() string {
	if x != nil {
		return x.System
	}
	return ""
}

func (x *InvokeRequest) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

func (x *InvokeRequest) GetUser() string {
	if x != nil {
		return x.User
	}
	return ""
}

func (x *InvokeRequest) GetSchemaJson() string {
	if x != nil {
		return x.SchemaJson
	}
	return ""
}

func (x *InvokeRequest) GetTurnId() string {
	if x != nil {
		return x.TurnId
	}
	return ""
}

type InvokeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"` // raw model output, expected to contain one JSON value
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`     // resolved model identifier
	InputTokens   int64                  `protobuf:"varint,3,opt,name=input_tokens,json=inputTokens,proto3" json:"input_tokens,omitempty"`
	OutputTokens  int64                  `protobuf:"varint,4,opt,name=output_tokens,json=outputTokens,proto3" json:"output_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvokeResponse) Reset() {
	*x = InvokeResponse{}
	mi := &file_invoker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvokeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvokeResponse) ProtoMessage() {}

func (x *InvokeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvokeResponse.ProtoReflect.Descriptor instead.
func (*InvokeResponse) Descriptor() ([]byte, []int) {
	return file_invoker_proto_rawDescGZIP(), []int{2}
}

func (x *InvokeResponse) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *InvokeResponse) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *InvokeResponse) GetInputTokens() int64 {
	if x != nil {
		return x.InputTokens
	}
	return 0
}

func (x *InvokeResponse) GetOutputTokens() int64 {
	if x != nil {
		return x.OutputTokens
	}
	return 0
}

var File_invoker_proto protoreflect.FileDescriptor

const file_invoker_proto_rawDesc = "" +
	"\n" +
	"\rinvoker.proto\x12\n" +
	"invoker.v1\";\n" +
	"\vChatMessage\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"\xbe\x01\n" +
	"\rInvokeRequest\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12\x16\n" +
	"\x06system\x18\x02 \x01(\tR\x06system\x123\n" +
	"\bmessages\x18\x03 \x03(\v2\x17.invoker.v1.ChatMessageR\bmessages\x12\x12\n" +
	"\x04user\x18\x04 \x01(\tR\x04user\x12\x1f\n" +
	"\vschema_json\x18\x05 \x01(\tR\n" +
	"schemaJson\x12\x17\n" +
	"\aturn_id\x18\x06 \x01(\tR\x06turnId\"\x88\x01\n" +
	"\x0eInvokeResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\x12!\n" +
	"\finput_tokens\x18\x03 \x01(\x03R\vinputTokens\x12#\n" +
	"\routput_tokens\x18\x04 \x01(\x03R\foutputTokens2Q\n" +
	"\x0eInvokerService\x12?\n" +
	"\x06Invoke\x12\x19.invoker.v1.InvokeRequest\x1a\x1a.invoker.v1.InvokeResponseB'Z%github.com/rapport-chat/rapport/protob\x06proto3"

var (
	file_invoker_proto_rawDescOnce sync.Once
	file_invoker_proto_rawDescData []byte
)

func file_invoker_proto_rawDescGZIP() []byte {
	file_invoker_proto_rawDescOnce.Do(func() {
		file_invoker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoker_proto_rawDesc), len(file_invoker_proto_rawDesc)))
	})
	return file_invoker_proto_rawDescData
}

var file_invoker_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_invoker_proto_goTypes = []any{
	(*ChatMessage)(nil),    // 0: invoker.v1.ChatMessage
	(*InvokeRequest)(nil),  // 1: invoker.v1.InvokeRequest
	(*InvokeResponse)(nil), // 2: invoker.v1.InvokeResponse
}
var file_invoker_proto_depIdxs = []int32{
	0, // 0: invoker.v1.InvokeRequest.messages:type_name -> invoker.v1.ChatMessage
	1, // 1: invoker.v1.InvokerService.Invoke:input_type -> invoker.v1.InvokeRequest
	2, // 2: invoker.v1.InvokerService.Invoke:output_type -> invoker.v1.InvokeResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_invoker_proto_init() }
func file_invoker_proto_init() {
	if File_invoker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoker_proto_rawDesc), len(file_invoker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_invoker_proto_goTypes,
		DependencyIndexes: file_invoker_proto_depIdxs,
		MessageInfos:      file_invoker_proto_msgTypes,
	}.Build()
	File_invoker_proto = out.File
	file_invoker_proto_goTypes = nil
	file_invoker_proto_depIdxs = nil
}
