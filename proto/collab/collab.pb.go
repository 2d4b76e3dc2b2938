// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: collab.proto

package collab

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type ConnectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoardId       string                 `protobuf:"bytes,1,opt,name=board_id,json=boardId,proto3" json:"board_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConnectRequest) Reset() {
	*x = ConnectRequest{}
	mi := &file_collab_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConnectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConnectRequest) ProtoMessage() {}

func (x *ConnectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConnectRequest.ProtoReflect.Descriptor instead.
func (*ConnectRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{0}
}

func (x *ConnectRequest) GetBoardId() string {
	if x != nil {
		return x.BoardId
	}
	return ""
}

type Story struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EpicId             string                 `protobuf:"bytes,2,opt,name=epic_id,json=epicId,proto3" json:"epic_id,omitempty"`
	Title              string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description        string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	AcceptanceCriteria []string               `protobuf:"bytes,5,rep,name=acceptance_criteria,json=acceptanceCriteria,proto3" json:"acceptance_criteria,omitempty"`
	Priority           string                 `protobuf:"bytes,6,opt,name=priority,proto3" json:"priority,omitempty"`
	Effort             int32                  `protobuf:"varint,7,opt,name=effort,proto3" json:"effort,omitempty"`
	Status             string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	Attachments        []*Attachment          `protobuf:"bytes,9,rep,name=attachments,proto3" json:"attachments,omitempty"`
	CreatedBy          string                 `protobuf:"bytes,10,opt,name=created_by,json=createdBy,proto3" json:"created_by,omitempty"`
	CreatedAt          *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Revision           uint64                 `protobuf:"varint,13,opt,name=revision,proto3" json:"revision,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Story) Reset() {
	*x = Story{}
	mi := &file_collab_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Story) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Story) ProtoMessage() {}

func (x *Story) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Story.ProtoReflect.Descriptor instead.
func (*Story) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{1}
}

func (x *Story) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Story) GetEpicId() string {
	if x != nil {
		return x.EpicId
	}
	return ""
}

func (x *Story) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Story) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Story) GetAcceptanceCriteria() []string {
	if x != nil {
		return x.AcceptanceCriteria
	}
	return nil
}

func (x *Story) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *Story) GetEffort() int32 {
	if x != nil {
		return x.Effort
	}
	return 0
}

func (x *Story) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Story) GetAttachments() []*Attachment {
	if x != nil {
		return x.Attachments
	}
	return nil
}

func (x *Story) GetCreatedBy() string {
	if x != nil {
		return x.CreatedBy
	}
	return ""
}

func (x *Story) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Story) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Story) GetRevision() uint64 {
	if x != nil {
		return x.Revision
	}
	return 0
}

type Attachment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Size          int64                  `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Attachment) Reset() {
	*x = Attachment{}
	mi := &file_collab_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Attachment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Attachment) ProtoMessage() {}

func (x *Attachment) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Attachment.ProtoReflect.Descriptor instead.
func (*Attachment) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{2}
}

func (x *Attachment) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Attachment) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Attachment) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

type Epic struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Color         string                 `protobuf:"bytes,4,opt,name=color,proto3" json:"color,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Epic) Reset() {
	*x = Epic{}
	mi := &file_collab_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Epic) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Epic) ProtoMessage() {}

func (x *Epic) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Epic.ProtoReflect.Descriptor instead.
func (*Epic) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{3}
}

func (x *Epic) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Epic) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Epic) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Epic) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *Epic) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type AttachmentUpload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachmentUpload) Reset() {
	*x = AttachmentUpload{}
	mi := &file_collab_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachmentUpload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachmentUpload) ProtoMessage() {}

func (x *AttachmentUpload) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachmentUpload.ProtoReflect.Descriptor instead.
func (*AttachmentUpload) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{4}
}

func (x *AttachmentUpload) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AttachmentUpload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type CreateEpicRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Color         string                 `protobuf:"bytes,3,opt,name=color,proto3" json:"color,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateEpicRequest) Reset() {
	*x = CreateEpicRequest{}
	mi := &file_collab_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateEpicRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateEpicRequest) ProtoMessage() {}

func (x *CreateEpicRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateEpicRequest.ProtoReflect.Descriptor instead.
func (*CreateEpicRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{5}
}

func (x *CreateEpicRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateEpicRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateEpicRequest) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

type EpicResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Epic          *Epic                  `protobuf:"bytes,1,opt,name=epic,proto3" json:"epic,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EpicResponse) Reset() {
	*x = EpicResponse{}
	mi := &file_collab_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EpicResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EpicResponse) ProtoMessage() {}

func (x *EpicResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EpicResponse.ProtoReflect.Descriptor instead.
func (*EpicResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{6}
}

func (x *EpicResponse) GetEpic() *Epic {
	if x != nil {
		return x.Epic
	}
	return nil
}

type ListEpicsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEpicsRequest) Reset() {
	*x = ListEpicsRequest{}
	mi := &file_collab_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEpicsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEpicsRequest) ProtoMessage() {}

func (x *ListEpicsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEpicsRequest.ProtoReflect.Descriptor instead.
func (*ListEpicsRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{7}
}

type ListEpicsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Epics         []*Epic                `protobuf:"bytes,1,rep,name=epics,proto3" json:"epics,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEpicsResponse) Reset() {
	*x = ListEpicsResponse{}
	mi := &file_collab_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEpicsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEpicsResponse) ProtoMessage() {}

func (x *ListEpicsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEpicsResponse.ProtoReflect.Descriptor instead.
func (*ListEpicsResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{8}
}

func (x *ListEpicsResponse) GetEpics() []*Epic {
	if x != nil {
		return x.Epics
	}
	return nil
}

type DeleteEpicRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EpicId        string                 `protobuf:"bytes,1,opt,name=epic_id,json=epicId,proto3" json:"epic_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEpicRequest) Reset() {
	*x = DeleteEpicRequest{}
	mi := &file_collab_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEpicRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEpicRequest) ProtoMessage() {}

func (x *DeleteEpicRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEpicRequest.ProtoReflect.Descriptor instead.
func (*DeleteEpicRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteEpicRequest) GetEpicId() string {
	if x != nil {
		return x.EpicId
	}
	return ""
}

type DeleteEpicResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Stories reparented onto the default epic.
	OrphanedStories int32 `protobuf:"varint,1,opt,name=orphaned_stories,json=orphanedStories,proto3" json:"orphaned_stories,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DeleteEpicResponse) Reset() {
	*x = DeleteEpicResponse{}
	mi := &file_collab_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEpicResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEpicResponse) ProtoMessage() {}

func (x *DeleteEpicResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEpicResponse.ProtoReflect.Descriptor instead.
func (*DeleteEpicResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteEpicResponse) GetOrphanedStories() int32 {
	if x != nil {
		return x.OrphanedStories
	}
	return 0
}

type CreateStoryRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	EpicId             string                 `protobuf:"bytes,1,opt,name=epic_id,json=epicId,proto3" json:"epic_id,omitempty"`
	Title              string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description        string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	AcceptanceCriteria []string               `protobuf:"bytes,4,rep,name=acceptance_criteria,json=acceptanceCriteria,proto3" json:"acceptance_criteria,omitempty"`
	Priority           string                 `protobuf:"bytes,5,opt,name=priority,proto3" json:"priority,omitempty"`
	Effort             int32                  `protobuf:"varint,6,opt,name=effort,proto3" json:"effort,omitempty"`
	Attachments        []*AttachmentUpload    `protobuf:"bytes,7,rep,name=attachments,proto3" json:"attachments,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateStoryRequest) Reset() {
	*x = CreateStoryRequest{}
	mi := &file_collab_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStoryRequest) ProtoMessage() {}

func (x *CreateStoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStoryRequest.ProtoReflect.Descriptor instead.
func (*CreateStoryRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{11}
}

func (x *CreateStoryRequest) GetEpicId() string {
	if x != nil {
		return x.EpicId
	}
	return ""
}

func (x *CreateStoryRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateStoryRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateStoryRequest) GetAcceptanceCriteria() []string {
	if x != nil {
		return x.AcceptanceCriteria
	}
	return nil
}

func (x *CreateStoryRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *CreateStoryRequest) GetEffort() int32 {
	if x != nil {
		return x.Effort
	}
	return 0
}

func (x *CreateStoryRequest) GetAttachments() []*AttachmentUpload {
	if x != nil {
		return x.Attachments
	}
	return nil
}

type UpdateStoryRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	StoryId            string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	EpicId             string                 `protobuf:"bytes,2,opt,name=epic_id,json=epicId,proto3" json:"epic_id,omitempty"`
	Title              string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description        string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	AcceptanceCriteria []string               `protobuf:"bytes,5,rep,name=acceptance_criteria,json=acceptanceCriteria,proto3" json:"acceptance_criteria,omitempty"`
	Priority           string                 `protobuf:"bytes,6,opt,name=priority,proto3" json:"priority,omitempty"`
	Effort             int32                  `protobuf:"varint,7,opt,name=effort,proto3" json:"effort,omitempty"`
	Attachments        []*AttachmentUpload    `protobuf:"bytes,8,rep,name=attachments,proto3" json:"attachments,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *UpdateStoryRequest) Reset() {
	*x = UpdateStoryRequest{}
	mi := &file_collab_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateStoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateStoryRequest) ProtoMessage() {}

func (x *UpdateStoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateStoryRequest.ProtoReflect.Descriptor instead.
func (*UpdateStoryRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateStoryRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *UpdateStoryRequest) GetEpicId() string {
	if x != nil {
		return x.EpicId
	}
	return ""
}

func (x *UpdateStoryRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *UpdateStoryRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateStoryRequest) GetAcceptanceCriteria() []string {
	if x != nil {
		return x.AcceptanceCriteria
	}
	return nil
}

func (x *UpdateStoryRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *UpdateStoryRequest) GetEffort() int32 {
	if x != nil {
		return x.Effort
	}
	return 0
}

func (x *UpdateStoryRequest) GetAttachments() []*AttachmentUpload {
	if x != nil {
		return x.Attachments
	}
	return nil
}

type MoveStoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MoveStoryRequest) Reset() {
	*x = MoveStoryRequest{}
	mi := &file_collab_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MoveStoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MoveStoryRequest) ProtoMessage() {}

func (x *MoveStoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MoveStoryRequest.ProtoReflect.Descriptor instead.
func (*MoveStoryRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{13}
}

func (x *MoveStoryRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *MoveStoryRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type DeleteStoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStoryRequest) Reset() {
	*x = DeleteStoryRequest{}
	mi := &file_collab_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStoryRequest) ProtoMessage() {}

func (x *DeleteStoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStoryRequest.ProtoReflect.Descriptor instead.
func (*DeleteStoryRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteStoryRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

type DeleteStoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStoryResponse) Reset() {
	*x = DeleteStoryResponse{}
	mi := &file_collab_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStoryResponse) ProtoMessage() {}

func (x *DeleteStoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStoryResponse.ProtoReflect.Descriptor instead.
func (*DeleteStoryResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteStoryResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetStoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStoryRequest) Reset() {
	*x = GetStoryRequest{}
	mi := &file_collab_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStoryRequest) ProtoMessage() {}

func (x *GetStoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStoryRequest.ProtoReflect.Descriptor instead.
func (*GetStoryRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{16}
}

func (x *GetStoryRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

type StoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Story         *Story                 `protobuf:"bytes,1,opt,name=story,proto3" json:"story,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StoryResponse) Reset() {
	*x = StoryResponse{}
	mi := &file_collab_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StoryResponse) ProtoMessage() {}

func (x *StoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StoryResponse.ProtoReflect.Descriptor instead.
func (*StoryResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{17}
}

func (x *StoryResponse) GetStory() *Story {
	if x != nil {
		return x.Story
	}
	return nil
}

type GetBoardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoardId       string                 `protobuf:"bytes,1,opt,name=board_id,json=boardId,proto3" json:"board_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBoardRequest) Reset() {
	*x = GetBoardRequest{}
	mi := &file_collab_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBoardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBoardRequest) ProtoMessage() {}

func (x *GetBoardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBoardRequest.ProtoReflect.Descriptor instead.
func (*GetBoardRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{18}
}

func (x *GetBoardRequest) GetBoardId() string {
	if x != nil {
		return x.BoardId
	}
	return ""
}

type BoardColumn struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Stories       []*Story               `protobuf:"bytes,2,rep,name=stories,proto3" json:"stories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoardColumn) Reset() {
	*x = BoardColumn{}
	mi := &file_collab_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoardColumn) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoardColumn) ProtoMessage() {}

func (x *BoardColumn) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoardColumn.ProtoReflect.Descriptor instead.
func (*BoardColumn) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{19}
}

func (x *BoardColumn) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BoardColumn) GetStories() []*Story {
	if x != nil {
		return x.Stories
	}
	return nil
}

type GetBoardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoardId       string                 `protobuf:"bytes,1,opt,name=board_id,json=boardId,proto3" json:"board_id,omitempty"`
	Columns       []*BoardColumn         `protobuf:"bytes,2,rep,name=columns,proto3" json:"columns,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBoardResponse) Reset() {
	*x = GetBoardResponse{}
	mi := &file_collab_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBoardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBoardResponse) ProtoMessage() {}

func (x *GetBoardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBoardResponse.ProtoReflect.Descriptor instead.
func (*GetBoardResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{20}
}

func (x *GetBoardResponse) GetBoardId() string {
	if x != nil {
		return x.BoardId
	}
	return ""
}

func (x *GetBoardResponse) GetColumns() []*BoardColumn {
	if x != nil {
		return x.Columns
	}
	return nil
}

type SearchStoriesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Raw query, /find style: terms plus --epic, --status, --limit flags.
	Query         string `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchStoriesRequest) Reset() {
	*x = SearchStoriesRequest{}
	mi := &file_collab_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchStoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchStoriesRequest) ProtoMessage() {}

func (x *SearchStoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchStoriesRequest.ProtoReflect.Descriptor instead.
func (*SearchStoriesRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{21}
}

func (x *SearchStoriesRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type SearchStoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stories       []*Story               `protobuf:"bytes,1,rep,name=stories,proto3" json:"stories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchStoriesResponse) Reset() {
	*x = SearchStoriesResponse{}
	mi := &file_collab_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchStoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchStoriesResponse) ProtoMessage() {}

func (x *SearchStoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchStoriesResponse.ProtoReflect.Descriptor instead.
func (*SearchStoriesResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{22}
}

func (x *SearchStoriesResponse) GetStories() []*Story {
	if x != nil {
		return x.Stories
	}
	return nil
}

type AnalyzeStoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	Agent         string                 `protobuf:"bytes,2,opt,name=agent,proto3" json:"agent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeStoryRequest) Reset() {
	*x = AnalyzeStoryRequest{}
	mi := &file_collab_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeStoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeStoryRequest) ProtoMessage() {}

func (x *AnalyzeStoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeStoryRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeStoryRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{23}
}

func (x *AnalyzeStoryRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *AnalyzeStoryRequest) GetAgent() string {
	if x != nil {
		return x.Agent
	}
	return ""
}

type Feedback struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StoryId         string                 `protobuf:"bytes,2,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	Agent           string                 `protobuf:"bytes,3,opt,name=agent,proto3" json:"agent,omitempty"`
	Model           string                 `protobuf:"bytes,4,opt,name=model,proto3" json:"model,omitempty"`
	Language        string                 `protobuf:"bytes,5,opt,name=language,proto3" json:"language,omitempty"`
	Message         string                 `protobuf:"bytes,6,opt,name=message,proto3" json:"message,omitempty"`
	Scores          map[string]float64     `protobuf:"bytes,7,rep,name=scores,proto3" json:"scores,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	Overall         float64                `protobuf:"fixed64,8,opt,name=overall,proto3" json:"overall,omitempty"`
	Proposal        []*StoryDraft          `protobuf:"bytes,9,rep,name=proposal,proto3" json:"proposal,omitempty"`
	PromptWords     int32                  `protobuf:"varint,10,opt,name=prompt_words,json=promptWords,proto3" json:"prompt_words,omitempty"`
	CompletionWords int32                  `protobuf:"varint,11,opt,name=completion_words,json=completionWords,proto3" json:"completion_words,omitempty"`
	At              *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=at,proto3" json:"at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Feedback) Reset() {
	*x = Feedback{}
	mi := &file_collab_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Feedback) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Feedback) ProtoMessage() {}

func (x *Feedback) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Feedback.ProtoReflect.Descriptor instead.
func (*Feedback) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{24}
}

func (x *Feedback) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Feedback) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *Feedback) GetAgent() string {
	if x != nil {
		return x.Agent
	}
	return ""
}

func (x *Feedback) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *Feedback) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *Feedback) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Feedback) GetScores() map[string]float64 {
	if x != nil {
		return x.Scores
	}
	return nil
}

func (x *Feedback) GetOverall() float64 {
	if x != nil {
		return x.Overall
	}
	return 0
}

func (x *Feedback) GetProposal() []*StoryDraft {
	if x != nil {
		return x.Proposal
	}
	return nil
}

func (x *Feedback) GetPromptWords() int32 {
	if x != nil {
		return x.PromptWords
	}
	return 0
}

func (x *Feedback) GetCompletionWords() int32 {
	if x != nil {
		return x.CompletionWords
	}
	return 0
}

func (x *Feedback) GetAt() *timestamppb.Timestamp {
	if x != nil {
		return x.At
	}
	return nil
}

type StoryDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Priority      string                 `protobuf:"bytes,3,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StoryDraft) Reset() {
	*x = StoryDraft{}
	mi := &file_collab_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StoryDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StoryDraft) ProtoMessage() {}

func (x *StoryDraft) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StoryDraft.ProtoReflect.Descriptor instead.
func (*StoryDraft) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{25}
}

func (x *StoryDraft) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *StoryDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *StoryDraft) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

type FeedbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Feedback      *Feedback              `protobuf:"bytes,1,opt,name=feedback,proto3" json:"feedback,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeedbackResponse) Reset() {
	*x = FeedbackResponse{}
	mi := &file_collab_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeedbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeedbackResponse) ProtoMessage() {}

func (x *FeedbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeedbackResponse.ProtoReflect.Descriptor instead.
func (*FeedbackResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{26}
}

func (x *FeedbackResponse) GetFeedback() *Feedback {
	if x != nil {
		return x.Feedback
	}
	return nil
}

type ProposeSplitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProposeSplitRequest) Reset() {
	*x = ProposeSplitRequest{}
	mi := &file_collab_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProposeSplitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProposeSplitRequest) ProtoMessage() {}

func (x *ProposeSplitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProposeSplitRequest.ProtoReflect.Descriptor instead.
func (*ProposeSplitRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{27}
}

func (x *ProposeSplitRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

type SplitProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Drafts        []*StoryDraft          `protobuf:"bytes,1,rep,name=drafts,proto3" json:"drafts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SplitProposalResponse) Reset() {
	*x = SplitProposalResponse{}
	mi := &file_collab_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SplitProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SplitProposalResponse) ProtoMessage() {}

func (x *SplitProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SplitProposalResponse.ProtoReflect.Descriptor instead.
func (*SplitProposalResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{28}
}

func (x *SplitProposalResponse) GetDrafts() []*StoryDraft {
	if x != nil {
		return x.Drafts
	}
	return nil
}

type ApplySplitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	Drafts        []*StoryDraft          `protobuf:"bytes,2,rep,name=drafts,proto3" json:"drafts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplySplitRequest) Reset() {
	*x = ApplySplitRequest{}
	mi := &file_collab_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplySplitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplySplitRequest) ProtoMessage() {}

func (x *ApplySplitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplySplitRequest.ProtoReflect.Descriptor instead.
func (*ApplySplitRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{29}
}

func (x *ApplySplitRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *ApplySplitRequest) GetDrafts() []*StoryDraft {
	if x != nil {
		return x.Drafts
	}
	return nil
}

type ApplySplitResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	CreatedStoryIds []string               `protobuf:"bytes,1,rep,name=created_story_ids,json=createdStoryIds,proto3" json:"created_story_ids,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ApplySplitResponse) Reset() {
	*x = ApplySplitResponse{}
	mi := &file_collab_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplySplitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplySplitResponse) ProtoMessage() {}

func (x *ApplySplitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplySplitResponse.ProtoReflect.Descriptor instead.
func (*ApplySplitResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{30}
}

func (x *ApplySplitResponse) GetCreatedStoryIds() []string {
	if x != nil {
		return x.CreatedStoryIds
	}
	return nil
}

type GetFeedbackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	Cursor        *string                `protobuf:"bytes,2,opt,name=cursor,proto3,oneof" json:"cursor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFeedbackRequest) Reset() {
	*x = GetFeedbackRequest{}
	mi := &file_collab_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFeedbackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFeedbackRequest) ProtoMessage() {}

func (x *GetFeedbackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFeedbackRequest.ProtoReflect.Descriptor instead.
func (*GetFeedbackRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{31}
}

func (x *GetFeedbackRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *GetFeedbackRequest) GetCursor() string {
	if x != nil && x.Cursor != nil {
		return *x.Cursor
	}
	return ""
}

type GetFeedbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Feedback      []*Feedback            `protobuf:"bytes,1,rep,name=feedback,proto3" json:"feedback,omitempty"`
	Cursor        *string                `protobuf:"bytes,2,opt,name=cursor,proto3,oneof" json:"cursor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFeedbackResponse) Reset() {
	*x = GetFeedbackResponse{}
	mi := &file_collab_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFeedbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFeedbackResponse) ProtoMessage() {}

func (x *GetFeedbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFeedbackResponse.ProtoReflect.Descriptor instead.
func (*GetFeedbackResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{32}
}

func (x *GetFeedbackResponse) GetFeedback() []*Feedback {
	if x != nil {
		return x.Feedback
	}
	return nil
}

func (x *GetFeedbackResponse) GetCursor() string {
	if x != nil && x.Cursor != nil {
		return *x.Cursor
	}
	return ""
}

type TypingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BoardId       string                 `protobuf:"bytes,1,opt,name=board_id,json=boardId,proto3" json:"board_id,omitempty"`
	StoryId       string                 `protobuf:"bytes,2,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TypingRequest) Reset() {
	*x = TypingRequest{}
	mi := &file_collab_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TypingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TypingRequest) ProtoMessage() {}

func (x *TypingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TypingRequest.ProtoReflect.Descriptor instead.
func (*TypingRequest) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{33}
}

func (x *TypingRequest) GetBoardId() string {
	if x != nil {
		return x.BoardId
	}
	return ""
}

func (x *TypingRequest) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

type TypingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TypingResponse) Reset() {
	*x = TypingResponse{}
	mi := &file_collab_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TypingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TypingResponse) ProtoMessage() {}

func (x *TypingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TypingResponse.ProtoReflect.Descriptor instead.
func (*TypingResponse) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{34}
}

func (x *TypingResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type Member struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Member) Reset() {
	*x = Member{}
	mi := &file_collab_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Member) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Member) ProtoMessage() {}

func (x *Member) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Member.ProtoReflect.Descriptor instead.
func (*Member) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{35}
}

func (x *Member) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Member) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type BoardEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*BoardEvent_StoryCreated
	//	*BoardEvent_StoryUpdated
	//	*BoardEvent_StoryMoved
	//	*BoardEvent_StoryDeleted
	//	*BoardEvent_EpicCreated
	//	*BoardEvent_MemberJoined
	//	*BoardEvent_MemberLeft
	//	*BoardEvent_TypingStarted
	//	*BoardEvent_TypingStopped
	//	*BoardEvent_FeedbackReady
	Event         isBoardEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoardEvent) Reset() {
	*x = BoardEvent{}
	mi := &file_collab_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoardEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoardEvent) ProtoMessage() {}

func (x *BoardEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoardEvent.ProtoReflect.Descriptor instead.
func (*BoardEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{36}
}

func (x *BoardEvent) GetEvent() isBoardEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *BoardEvent) GetStoryCreated() *StoryCreatedEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_StoryCreated); ok {
			return x.StoryCreated
		}
	}
	return nil
}

func (x *BoardEvent) GetStoryUpdated() *StoryUpdatedEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_StoryUpdated); ok {
			return x.StoryUpdated
		}
	}
	return nil
}

func (x *BoardEvent) GetStoryMoved() *StoryMovedEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_StoryMoved); ok {
			return x.StoryMoved
		}
	}
	return nil
}

func (x *BoardEvent) GetStoryDeleted() *StoryDeletedEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_StoryDeleted); ok {
			return x.StoryDeleted
		}
	}
	return nil
}

func (x *BoardEvent) GetEpicCreated() *EpicCreatedEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_EpicCreated); ok {
			return x.EpicCreated
		}
	}
	return nil
}

func (x *BoardEvent) GetMemberJoined() *MemberJoinedEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_MemberJoined); ok {
			return x.MemberJoined
		}
	}
	return nil
}

func (x *BoardEvent) GetMemberLeft() *MemberLeftEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_MemberLeft); ok {
			return x.MemberLeft
		}
	}
	return nil
}

func (x *BoardEvent) GetTypingStarted() *TypingEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_TypingStarted); ok {
			return x.TypingStarted
		}
	}
	return nil
}

func (x *BoardEvent) GetTypingStopped() *TypingEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_TypingStopped); ok {
			return x.TypingStopped
		}
	}
	return nil
}

func (x *BoardEvent) GetFeedbackReady() *FeedbackReadyEvent {
	if x != nil {
		if x, ok := x.Event.(*BoardEvent_FeedbackReady); ok {
			return x.FeedbackReady
		}
	}
	return nil
}

type isBoardEvent_Event interface {
	isBoardEvent_Event()
}

type BoardEvent_StoryCreated struct {
	StoryCreated *StoryCreatedEvent `protobuf:"bytes,1,opt,name=story_created,json=storyCreated,proto3,oneof"`
}

type BoardEvent_StoryUpdated struct {
	StoryUpdated *StoryUpdatedEvent `protobuf:"bytes,2,opt,name=story_updated,json=storyUpdated,proto3,oneof"`
}

type BoardEvent_StoryMoved struct {
	StoryMoved *StoryMovedEvent `protobuf:"bytes,3,opt,name=story_moved,json=storyMoved,proto3,oneof"`
}

type BoardEvent_StoryDeleted struct {
	StoryDeleted *StoryDeletedEvent `protobuf:"bytes,4,opt,name=story_deleted,json=storyDeleted,proto3,oneof"`
}

type BoardEvent_EpicCreated struct {
	EpicCreated *EpicCreatedEvent `protobuf:"bytes,5,opt,name=epic_created,json=epicCreated,proto3,oneof"`
}

type BoardEvent_MemberJoined struct {
	MemberJoined *MemberJoinedEvent `protobuf:"bytes,6,opt,name=member_joined,json=memberJoined,proto3,oneof"`
}

type BoardEvent_MemberLeft struct {
	MemberLeft *MemberLeftEvent `protobuf:"bytes,7,opt,name=member_left,json=memberLeft,proto3,oneof"`
}

type BoardEvent_TypingStarted struct {
	TypingStarted *TypingEvent `protobuf:"bytes,8,opt,name=typing_started,json=typingStarted,proto3,oneof"`
}

type BoardEvent_TypingStopped struct {
	TypingStopped *TypingEvent `protobuf:"bytes,9,opt,name=typing_stopped,json=typingStopped,proto3,oneof"`
}

type BoardEvent_FeedbackReady struct {
	FeedbackReady *FeedbackReadyEvent `protobuf:"bytes,10,opt,name=feedback_ready,json=feedbackReady,proto3,oneof"`
}

func (*BoardEvent_StoryCreated) isBoardEvent_Event() {}

func (*BoardEvent_StoryUpdated) isBoardEvent_Event() {}

func (*BoardEvent_StoryMoved) isBoardEvent_Event() {}

func (*BoardEvent_StoryDeleted) isBoardEvent_Event() {}

func (*BoardEvent_EpicCreated) isBoardEvent_Event() {}

func (*BoardEvent_MemberJoined) isBoardEvent_Event() {}

func (*BoardEvent_MemberLeft) isBoardEvent_Event() {}

func (*BoardEvent_TypingStarted) isBoardEvent_Event() {}

func (*BoardEvent_TypingStopped) isBoardEvent_Event() {}

func (*BoardEvent_FeedbackReady) isBoardEvent_Event() {}

type StoryCreatedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Story         *Story                 `protobuf:"bytes,1,opt,name=story,proto3" json:"story,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StoryCreatedEvent) Reset() {
	*x = StoryCreatedEvent{}
	mi := &file_collab_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StoryCreatedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StoryCreatedEvent) ProtoMessage() {}

func (x *StoryCreatedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StoryCreatedEvent.ProtoReflect.Descriptor instead.
func (*StoryCreatedEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{37}
}

func (x *StoryCreatedEvent) GetStory() *Story {
	if x != nil {
		return x.Story
	}
	return nil
}

type StoryUpdatedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Story         *Story                 `protobuf:"bytes,1,opt,name=story,proto3" json:"story,omitempty"`
	ChangedBy     string                 `protobuf:"bytes,2,opt,name=changed_by,json=changedBy,proto3" json:"changed_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StoryUpdatedEvent) Reset() {
	*x = StoryUpdatedEvent{}
	mi := &file_collab_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StoryUpdatedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StoryUpdatedEvent) ProtoMessage() {}

func (x *StoryUpdatedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StoryUpdatedEvent.ProtoReflect.Descriptor instead.
func (*StoryUpdatedEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{38}
}

func (x *StoryUpdatedEvent) GetStory() *Story {
	if x != nil {
		return x.Story
	}
	return nil
}

func (x *StoryUpdatedEvent) GetChangedBy() string {
	if x != nil {
		return x.ChangedBy
	}
	return ""
}

type StoryMovedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	FromStatus    string                 `protobuf:"bytes,2,opt,name=from_status,json=fromStatus,proto3" json:"from_status,omitempty"`
	ToStatus      string                 `protobuf:"bytes,3,opt,name=to_status,json=toStatus,proto3" json:"to_status,omitempty"`
	MovedBy       string                 `protobuf:"bytes,4,opt,name=moved_by,json=movedBy,proto3" json:"moved_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StoryMovedEvent) Reset() {
	*x = StoryMovedEvent{}
	mi := &file_collab_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StoryMovedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StoryMovedEvent) ProtoMessage() {}

func (x *StoryMovedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StoryMovedEvent.ProtoReflect.Descriptor instead.
func (*StoryMovedEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{39}
}

func (x *StoryMovedEvent) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *StoryMovedEvent) GetFromStatus() string {
	if x != nil {
		return x.FromStatus
	}
	return ""
}

func (x *StoryMovedEvent) GetToStatus() string {
	if x != nil {
		return x.ToStatus
	}
	return ""
}

func (x *StoryMovedEvent) GetMovedBy() string {
	if x != nil {
		return x.MovedBy
	}
	return ""
}

type StoryDeletedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	DeletedBy     string                 `protobuf:"bytes,2,opt,name=deleted_by,json=deletedBy,proto3" json:"deleted_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StoryDeletedEvent) Reset() {
	*x = StoryDeletedEvent{}
	mi := &file_collab_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StoryDeletedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StoryDeletedEvent) ProtoMessage() {}

func (x *StoryDeletedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StoryDeletedEvent.ProtoReflect.Descriptor instead.
func (*StoryDeletedEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{40}
}

func (x *StoryDeletedEvent) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *StoryDeletedEvent) GetDeletedBy() string {
	if x != nil {
		return x.DeletedBy
	}
	return ""
}

type EpicCreatedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Epic          *Epic                  `protobuf:"bytes,1,opt,name=epic,proto3" json:"epic,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EpicCreatedEvent) Reset() {
	*x = EpicCreatedEvent{}
	mi := &file_collab_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EpicCreatedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EpicCreatedEvent) ProtoMessage() {}

func (x *EpicCreatedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EpicCreatedEvent.ProtoReflect.Descriptor instead.
func (*EpicCreatedEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{41}
}

func (x *EpicCreatedEvent) GetEpic() *Epic {
	if x != nil {
		return x.Epic
	}
	return nil
}

type MemberJoinedEvent struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Member *Member                `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	// Full membership snapshot, consistent at join time.
	Members       []*Member `protobuf:"bytes,2,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MemberJoinedEvent) Reset() {
	*x = MemberJoinedEvent{}
	mi := &file_collab_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberJoinedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberJoinedEvent) ProtoMessage() {}

func (x *MemberJoinedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberJoinedEvent.ProtoReflect.Descriptor instead.
func (*MemberJoinedEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{42}
}

func (x *MemberJoinedEvent) GetMember() *Member {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *MemberJoinedEvent) GetMembers() []*Member {
	if x != nil {
		return x.Members
	}
	return nil
}

type MemberLeftEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Member        *Member                `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MemberLeftEvent) Reset() {
	*x = MemberLeftEvent{}
	mi := &file_collab_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberLeftEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberLeftEvent) ProtoMessage() {}

func (x *MemberLeftEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberLeftEvent.ProtoReflect.Descriptor instead.
func (*MemberLeftEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{43}
}

func (x *MemberLeftEvent) GetMember() *Member {
	if x != nil {
		return x.Member
	}
	return nil
}

type TypingEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoryId       string                 `protobuf:"bytes,1,opt,name=story_id,json=storyId,proto3" json:"story_id,omitempty"`
	Member        *Member                `protobuf:"bytes,2,opt,name=member,proto3" json:"member,omitempty"`
	Expired       bool                   `protobuf:"varint,3,opt,name=expired,proto3" json:"expired,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TypingEvent) Reset() {
	*x = TypingEvent{}
	mi := &file_collab_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TypingEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TypingEvent) ProtoMessage() {}

func (x *TypingEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TypingEvent.ProtoReflect.Descriptor instead.
func (*TypingEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{44}
}

func (x *TypingEvent) GetStoryId() string {
	if x != nil {
		return x.StoryId
	}
	return ""
}

func (x *TypingEvent) GetMember() *Member {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *TypingEvent) GetExpired() bool {
	if x != nil {
		return x.Expired
	}
	return false
}

type FeedbackReadyEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Feedback      *Feedback              `protobuf:"bytes,1,opt,name=feedback,proto3" json:"feedback,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeedbackReadyEvent) Reset() {
	*x = FeedbackReadyEvent{}
	mi := &file_collab_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeedbackReadyEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeedbackReadyEvent) ProtoMessage() {}

func (x *FeedbackReadyEvent) ProtoReflect() protoreflect.Message {
	mi := &file_collab_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeedbackReadyEvent.ProtoReflect.Descriptor instead.
func (*FeedbackReadyEvent) Descriptor() ([]byte, []int) {
	return file_collab_proto_rawDescGZIP(), []int{45}
}

func (x *FeedbackReadyEvent) GetFeedback() *Feedback {
	if x != nil {
		return x.Feedback
	}
	return nil
}

var File_collab_proto protoreflect.FileDescriptor

const file_collab_proto_rawDesc = "" +
	"\n" +
	"\fcollab.proto\x12\tcollab.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"+\n" +
	"\x0eConnectRequest\x12\x19\n" +
	"\bboard_id\x18\x01 \x01(\tR\aboardId\"\xcf\x03\n" +
	"\x05Story\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aepic_id\x18\x02 \x01(\tR\x06epicId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12/\n" +
	"\x13acceptance_criteria\x18\x05 \x03(\tR\x12acceptanceCriteria\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\tR\bpriority\x12\x16\n" +
	"\x06effort\x18\a \x01(\x05R\x06effort\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x127\n" +
	"\vattachments\x18\t \x03(\v2\x15.collab.v1.AttachmentR\vattachments\x12\x1d\n" +
	"\n" +
	"created_by\x18\n" +
	" \x01(\tR\tcreatedBy\x129\n" +
	"\n" +
	"created_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\x1a\n" +
	"\brevision\x18\r \x01(\x04R\brevision\"Q\n" +
	"\n" +
	"Attachment\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\x12\x12\n" +
	"\x04size\x18\x03 \x01(\x03R\x04size\"\x9d\x01\n" +
	"\x04Epic\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x14\n" +
	"\x05color\x18\x04 \x01(\tR\x05color\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"@\n" +
	"\x10AttachmentUpload\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"_\n" +
	"\x11CreateEpicRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x14\n" +
	"\x05color\x18\x03 \x01(\tR\x05color\"3\n" +
	"\fEpicResponse\x12#\n" +
	"\x04epic\x18\x01 \x01(\v2\x0f.collab.v1.EpicR\x04epic\"\x12\n" +
	"\x10ListEpicsRequest\":\n" +
	"\x11ListEpicsResponse\x12%\n" +
	"\x05epics\x18\x01 \x03(\v2\x0f.collab.v1.EpicR\x05epics\",\n" +
	"\x11DeleteEpicRequest\x12\x17\n" +
	"\aepic_id\x18\x01 \x01(\tR\x06epicId\"?\n" +
	"\x12DeleteEpicResponse\x12)\n" +
	"\x10orphaned_stories\x18\x01 \x01(\x05R\x0forphanedStories\"\x89\x02\n" +
	"\x12CreateStoryRequest\x12\x17\n" +
	"\aepic_id\x18\x01 \x01(\tR\x06epicId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12/\n" +
	"\x13acceptance_criteria\x18\x04 \x03(\tR\x12acceptanceCriteria\x12\x1a\n" +
	"\bpriority\x18\x05 \x01(\tR\bpriority\x12\x16\n" +
	"\x06effort\x18\x06 \x01(\x05R\x06effort\x12=\n" +
	"\vattachments\x18\a \x03(\v2\x1b.collab.v1.AttachmentUploadR\vattachments\"\xa4\x02\n" +
	"\x12UpdateStoryRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12\x17\n" +
	"\aepic_id\x18\x02 \x01(\tR\x06epicId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12/\n" +
	"\x13acceptance_criteria\x18\x05 \x03(\tR\x12acceptanceCriteria\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\tR\bpriority\x12\x16\n" +
	"\x06effort\x18\a \x01(\x05R\x06effort\x12=\n" +
	"\vattachments\x18\b \x03(\v2\x1b.collab.v1.AttachmentUploadR\vattachments\"E\n" +
	"\x10MoveStoryRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"/\n" +
	"\x12DeleteStoryRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\"/\n" +
	"\x13DeleteStoryResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\",\n" +
	"\x0fGetStoryRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\"7\n" +
	"\rStoryResponse\x12&\n" +
	"\x05story\x18\x01 \x01(\v2\x10.collab.v1.StoryR\x05story\",\n" +
	"\x0fGetBoardRequest\x12\x19\n" +
	"\bboard_id\x18\x01 \x01(\tR\aboardId\"Q\n" +
	"\vBoardColumn\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12*\n" +
	"\astories\x18\x02 \x03(\v2\x10.collab.v1.StoryR\astories\"_\n" +
	"\x10GetBoardResponse\x12\x19\n" +
	"\bboard_id\x18\x01 \x01(\tR\aboardId\x120\n" +
	"\acolumns\x18\x02 \x03(\v2\x16.collab.v1.BoardColumnR\acolumns\",\n" +
	"\x14SearchStoriesRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\"C\n" +
	"\x15SearchStoriesResponse\x12*\n" +
	"\astories\x18\x01 \x03(\v2\x10.collab.v1.StoryR\astories\"F\n" +
	"\x13AnalyzeStoryRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12\x14\n" +
	"\x05agent\x18\x02 \x01(\tR\x05agent\"\xd2\x03\n" +
	"\bFeedback\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bstory_id\x18\x02 \x01(\tR\astoryId\x12\x14\n" +
	"\x05agent\x18\x03 \x01(\tR\x05agent\x12\x14\n" +
	"\x05model\x18\x04 \x01(\tR\x05model\x12\x1a\n" +
	"\blanguage\x18\x05 \x01(\tR\blanguage\x12\x18\n" +
	"\amessage\x18\x06 \x01(\tR\amessage\x127\n" +
	"\x06scores\x18\a \x03(\v2\x1f.collab.v1.Feedback.ScoresEntryR\x06scores\x12\x18\n" +
	"\aoverall\x18\b \x01(\x01R\aoverall\x121\n" +
	"\bproposal\x18\t \x03(\v2\x15.collab.v1.StoryDraftR\bproposal\x12!\n" +
	"\fprompt_words\x18\n" +
	" \x01(\x05R\vpromptWords\x12)\n" +
	"\x10completion_words\x18\v \x01(\x05R\x0fcompletionWords\x12*\n" +
	"\x02at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\x02at\x1a9\n" +
	"\vScoresEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"`\n" +
	"\n" +
	"StoryDraft\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1a\n" +
	"\bpriority\x18\x03 \x01(\tR\bpriority\"C\n" +
	"\x10FeedbackResponse\x12/\n" +
	"\bfeedback\x18\x01 \x01(\v2\x13.collab.v1.FeedbackR\bfeedback\"0\n" +
	"\x13ProposeSplitRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\"F\n" +
	"\x15SplitProposalResponse\x12-\n" +
	"\x06drafts\x18\x01 \x03(\v2\x15.collab.v1.StoryDraftR\x06drafts\"]\n" +
	"\x11ApplySplitRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12-\n" +
	"\x06drafts\x18\x02 \x03(\v2\x15.collab.v1.StoryDraftR\x06drafts\"@\n" +
	"\x12ApplySplitResponse\x12*\n" +
	"\x11created_story_ids\x18\x01 \x03(\tR\x0fcreatedStoryIds\"W\n" +
	"\x12GetFeedbackRequest\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12\x1b\n" +
	"\x06cursor\x18\x02 \x01(\tH\x00R\x06cursor\x88\x01\x01B\t\n" +
	"\a_cursor\"n\n" +
	"\x13GetFeedbackResponse\x12/\n" +
	"\bfeedback\x18\x01 \x03(\v2\x13.collab.v1.FeedbackR\bfeedback\x12\x1b\n" +
	"\x06cursor\x18\x02 \x01(\tH\x00R\x06cursor\x88\x01\x01B\t\n" +
	"\a_cursor\"E\n" +
	"\rTypingRequest\x12\x19\n" +
	"\bboard_id\x18\x01 \x01(\tR\aboardId\x12\x19\n" +
	"\bstory_id\x18\x02 \x01(\tR\astoryId\"*\n" +
	"\x0eTypingResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\"5\n" +
	"\x06Member\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\xb3\x05\n" +
	"\n" +
	"BoardEvent\x12C\n" +
	"\rstory_created\x18\x01 \x01(\v2\x1c.collab.v1.StoryCreatedEventH\x00R\fstoryCreated\x12C\n" +
	"\rstory_updated\x18\x02 \x01(\v2\x1c.collab.v1.StoryUpdatedEventH\x00R\fstoryUpdated\x12=\n" +
	"\vstory_moved\x18\x03 \x01(\v2\x1a.collab.v1.StoryMovedEventH\x00R\n" +
	"storyMoved\x12C\n" +
	"\rstory_deleted\x18\x04 \x01(\v2\x1c.collab.v1.StoryDeletedEventH\x00R\fstoryDeleted\x12@\n" +
	"\fepic_created\x18\x05 \x01(\v2\x1b.collab.v1.EpicCreatedEventH\x00R\vepicCreated\x12C\n" +
	"\rmember_joined\x18\x06 \x01(\v2\x1c.collab.v1.MemberJoinedEventH\x00R\fmemberJoined\x12=\n" +
	"\vmember_left\x18\a \x01(\v2\x1a.collab.v1.MemberLeftEventH\x00R\n" +
	"memberLeft\x12?\n" +
	"\x0etyping_started\x18\b \x01(\v2\x16.collab.v1.TypingEventH\x00R\rtypingStarted\x12?\n" +
	"\x0etyping_stopped\x18\t \x01(\v2\x16.collab.v1.TypingEventH\x00R\rtypingStopped\x12F\n" +
	"\x0efeedback_ready\x18\n" +
	" \x01(\v2\x1d.collab.v1.FeedbackReadyEventH\x00R\rfeedbackReadyB\a\n" +
	"\x05event\";\n" +
	"\x11StoryCreatedEvent\x12&\n" +
	"\x05story\x18\x01 \x01(\v2\x10.collab.v1.StoryR\x05story\"Z\n" +
	"\x11StoryUpdatedEvent\x12&\n" +
	"\x05story\x18\x01 \x01(\v2\x10.collab.v1.StoryR\x05story\x12\x1d\n" +
	"\n" +
	"changed_by\x18\x02 \x01(\tR\tchangedBy\"\x85\x01\n" +
	"\x0fStoryMovedEvent\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12\x1f\n" +
	"\vfrom_status\x18\x02 \x01(\tR\n" +
	"fromStatus\x12\x1b\n" +
	"\tto_status\x18\x03 \x01(\tR\btoStatus\x12\x19\n" +
	"\bmoved_by\x18\x04 \x01(\tR\amovedBy\"M\n" +
	"\x11StoryDeletedEvent\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12\x1d\n" +
	"\n" +
	"deleted_by\x18\x02 \x01(\tR\tdeletedBy\"7\n" +
	"\x10EpicCreatedEvent\x12#\n" +
	"\x04epic\x18\x01 \x01(\v2\x0f.collab.v1.EpicR\x04epic\"k\n" +
	"\x11MemberJoinedEvent\x12)\n" +
	"\x06member\x18\x01 \x01(\v2\x11.collab.v1.MemberR\x06member\x12+\n" +
	"\amembers\x18\x02 \x03(\v2\x11.collab.v1.MemberR\amembers\"<\n" +
	"\x0fMemberLeftEvent\x12)\n" +
	"\x06member\x18\x01 \x01(\v2\x11.collab.v1.MemberR\x06member\"m\n" +
	"\vTypingEvent\x12\x19\n" +
	"\bstory_id\x18\x01 \x01(\tR\astoryId\x12)\n" +
	"\x06member\x18\x02 \x01(\v2\x11.collab.v1.MemberR\x06member\x12\x18\n" +
	"\aexpired\x18\x03 \x01(\bR\aexpired\"E\n" +
	"\x12FeedbackReadyEvent\x12/\n" +
	"\bfeedback\x18\x01 \x01(\v2\x13.collab.v1.FeedbackR\bfeedback2\xe2\t\n" +
	"\rCollabService\x12=\n" +
	"\aConnect\x12\x19.collab.v1.ConnectRequest\x1a\x15.collab.v1.BoardEvent0\x01\x12C\n" +
	"\n" +
	"CreateEpic\x12\x1c.collab.v1.CreateEpicRequest\x1a\x17.collab.v1.EpicResponse\x12F\n" +
	"\tListEpics\x12\x1b.collab.v1.ListEpicsRequest\x1a\x1c.collab.v1.ListEpicsResponse\x12I\n" +
	"\n" +
	"DeleteEpic\x12\x1c.collab.v1.DeleteEpicRequest\x1a\x1d.collab.v1.DeleteEpicResponse\x12F\n" +
	"\vCreateStory\x12\x1d.collab.v1.CreateStoryRequest\x1a\x18.collab.v1.StoryResponse\x12F\n" +
	"\vUpdateStory\x12\x1d.collab.v1.UpdateStoryRequest\x1a\x18.collab.v1.StoryResponse\x12B\n" +
	"\tMoveStory\x12\x1b.collab.v1.MoveStoryRequest\x1a\x18.collab.v1.StoryResponse\x12L\n" +
	"\vDeleteStory\x12\x1d.collab.v1.DeleteStoryRequest\x1a\x1e.collab.v1.DeleteStoryResponse\x12@\n" +
	"\bGetStory\x12\x1a.collab.v1.GetStoryRequest\x1a\x18.collab.v1.StoryResponse\x12C\n" +
	"\bGetBoard\x12\x1a.collab.v1.GetBoardRequest\x1a\x1b.collab.v1.GetBoardResponse\x12R\n" +
	"\rSearchStories\x12\x1f.collab.v1.SearchStoriesRequest\x1a .collab.v1.SearchStoriesResponse\x12K\n" +
	"\fAnalyzeStory\x12\x1e.collab.v1.AnalyzeStoryRequest\x1a\x1b.collab.v1.FeedbackResponse\x12P\n" +
	"\fProposeSplit\x12\x1e.collab.v1.ProposeSplitRequest\x1a .collab.v1.SplitProposalResponse\x12I\n" +
	"\n" +
	"ApplySplit\x12\x1c.collab.v1.ApplySplitRequest\x1a\x1d.collab.v1.ApplySplitResponse\x12L\n" +
	"\vGetFeedback\x12\x1d.collab.v1.GetFeedbackRequest\x1a\x1e.collab.v1.GetFeedbackResponse\x12B\n" +
	"\vStartTyping\x12\x18.collab.v1.TypingRequest\x1a\x19.collab.v1.TypingResponse\x12A\n" +
	"\n" +
	"StopTyping\x12\x18.collab.v1.TypingRequest\x1a\x19.collab.v1.TypingResponseB\x19Z\x17storysplit/proto/collabb\x06proto3"

var (
	file_collab_proto_rawDescOnce sync.Once
	file_collab_proto_rawDescData []byte
)

func file_collab_proto_rawDescGZIP() []byte {
	file_collab_proto_rawDescOnce.Do(func() {
		file_collab_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_collab_proto_rawDesc), len(file_collab_proto_rawDesc)))
	})
	return file_collab_proto_rawDescData
}

var file_collab_proto_msgTypes = make([]protoimpl.MessageInfo, 47)
var file_collab_proto_goTypes = []any{
	(*ConnectRequest)(nil),        // 0: collab.v1.ConnectRequest
	(*Story)(nil),                 // 1: collab.v1.Story
	(*Attachment)(nil),            // 2: collab.v1.Attachment
	(*Epic)(nil),                  // 3: collab.v1.Epic
	(*AttachmentUpload)(nil),      // 4: collab.v1.AttachmentUpload
	(*CreateEpicRequest)(nil),     // 5: collab.v1.CreateEpicRequest
	(*EpicResponse)(nil),          // 6: collab.v1.EpicResponse
	(*ListEpicsRequest)(nil),      // 7: collab.v1.ListEpicsRequest
	(*ListEpicsResponse)(nil),     // 8: collab.v1.ListEpicsResponse
	(*DeleteEpicRequest)(nil),     // 9: collab.v1.DeleteEpicRequest
	(*DeleteEpicResponse)(nil),    // 10: collab.v1.DeleteEpicResponse
	(*CreateStoryRequest)(nil),    // 11: collab.v1.CreateStoryRequest
	(*UpdateStoryRequest)(nil),    // 12: collab.v1.UpdateStoryRequest
	(*MoveStoryRequest)(nil),      // 13: collab.v1.MoveStoryRequest
	(*DeleteStoryRequest)(nil),    // 14: collab.v1.DeleteStoryRequest
	(*DeleteStoryResponse)(nil),   // 15: collab.v1.DeleteStoryResponse
	(*GetStoryRequest)(nil),       // 16: collab.v1.GetStoryRequest
	(*StoryResponse)(nil),         // 17: collab.v1.StoryResponse
	(*GetBoardRequest)(nil),       // 18: collab.v1.GetBoardRequest
	(*BoardColumn)(nil),           // 19: collab.v1.BoardColumn
	(*GetBoardResponse)(nil),      // 20: collab.v1.GetBoardResponse
	(*SearchStoriesRequest)(nil),  // 21: collab.v1.SearchStoriesRequest
	(*SearchStoriesResponse)(nil), // 22: collab.v1.SearchStoriesResponse
	(*AnalyzeStoryRequest)(nil),   // 23: collab.v1.AnalyzeStoryRequest
	(*Feedback)(nil),              // 24: collab.v1.Feedback
	(*StoryDraft)(nil),            // 25: collab.v1.StoryDraft
	(*FeedbackResponse)(nil),      // 26: collab.v1.FeedbackResponse
	(*ProposeSplitRequest)(nil),   // 27: collab.v1.ProposeSplitRequest
	(*SplitProposalResponse)(nil), // 28: collab.v1.SplitProposalResponse
	(*ApplySplitRequest)(nil),     // 29: collab.v1.ApplySplitRequest
	(*ApplySplitResponse)(nil),    // 30: collab.v1.ApplySplitResponse
	(*GetFeedbackRequest)(nil),    // 31: collab.v1.GetFeedbackRequest
	(*GetFeedbackResponse)(nil),   // 32: collab.v1.GetFeedbackResponse
	(*TypingRequest)(nil),         // 33: collab.v1.TypingRequest
	(*TypingResponse)(nil),        // 34: collab.v1.TypingResponse
	(*Member)(nil),                // 35: collab.v1.Member
	(*BoardEvent)(nil),            // 36: collab.v1.BoardEvent
	(*StoryCreatedEvent)(nil),     // 37: collab.v1.StoryCreatedEvent
	(*StoryUpdatedEvent)(nil),     // 38: collab.v1.StoryUpdatedEvent
	(*StoryMovedEvent)(nil),       // 39: collab.v1.StoryMovedEvent
	(*StoryDeletedEvent)(nil),     // 40: collab.v1.StoryDeletedEvent
	(*EpicCreatedEvent)(nil),      // 41: collab.v1.EpicCreatedEvent
	(*MemberJoinedEvent)(nil),     // 42: collab.v1.MemberJoinedEvent
	(*MemberLeftEvent)(nil),       // 43: collab.v1.MemberLeftEvent
	(*TypingEvent)(nil),           // 44: collab.v1.TypingEvent
	(*FeedbackReadyEvent)(nil),    // 45: collab.v1.FeedbackReadyEvent
	nil,                           // 46: collab.v1.Feedback.ScoresEntry
	(*timestamppb.Timestamp)(nil), // 47: google.protobuf.Timestamp
}
var file_collab_proto_depIdxs = []int32{
	2,  // 0: collab.v1.Story.attachments:type_name -> collab.v1.Attachment
	47, // 1: collab.v1.Story.created_at:type_name -> google.protobuf.Timestamp
	47, // 2: collab.v1.Story.updated_at:type_name -> google.protobuf.Timestamp
	47, // 3: collab.v1.Epic.created_at:type_name -> google.protobuf.Timestamp
	3,  // 4: collab.v1.EpicResponse.epic:type_name -> collab.v1.Epic
	3,  // 5: collab.v1.ListEpicsResponse.epics:type_name -> collab.v1.Epic
	4,  // 6: collab.v1.CreateStoryRequest.attachments:type_name -> collab.v1.AttachmentUpload
	4,  // 7: collab.v1.UpdateStoryRequest.attachments:type_name -> collab.v1.AttachmentUpload
	1,  // 8: collab.v1.StoryResponse.story:type_name -> collab.v1.Story
	1,  // 9: collab.v1.BoardColumn.stories:type_name -> collab.v1.Story
	19, // 10: collab.v1.GetBoardResponse.columns:type_name -> collab.v1.BoardColumn
	1,  // 11: collab.v1.SearchStoriesResponse.stories:type_name -> collab.v1.Story
	46, // 12: collab.v1.Feedback.scores:type_name -> collab.v1.Feedback.ScoresEntry
	25, // 13: collab.v1.Feedback.proposal:type_name -> collab.v1.StoryDraft
	47, // 14: collab.v1.Feedback.at:type_name -> google.protobuf.Timestamp
	24, // 15: collab.v1.FeedbackResponse.feedback:type_name -> collab.v1.Feedback
	25, // 16: collab.v1.SplitProposalResponse.drafts:type_name -> collab.v1.StoryDraft
	25, // 17: collab.v1.ApplySplitRequest.drafts:type_name -> collab.v1.StoryDraft
	24, // 18: collab.v1.GetFeedbackResponse.feedback:type_name -> collab.v1.Feedback
	37, // 19: collab.v1.BoardEvent.story_created:type_name -> collab.v1.StoryCreatedEvent
	38, // 20: collab.v1.BoardEvent.story_updated:type_name -> collab.v1.StoryUpdatedEvent
	39, // 21: collab.v1.BoardEvent.story_moved:type_name -> collab.v1.StoryMovedEvent
	40, // 22: collab.v1.BoardEvent.story_deleted:type_name -> collab.v1.StoryDeletedEvent
	41, // 23: collab.v1.BoardEvent.epic_created:type_name -> collab.v1.EpicCreatedEvent
	42, // 24: collab.v1.BoardEvent.member_joined:type_name -> collab.v1.MemberJoinedEvent
	43, // 25: collab.v1.BoardEvent.member_left:type_name -> collab.v1.MemberLeftEvent
	44, // 26: collab.v1.BoardEvent.typing_started:type_name -> collab.v1.TypingEvent
	44, // 27: collab.v1.BoardEvent.typing_stopped:type_name -> collab.v1.TypingEvent
	45, // 28: collab.v1.BoardEvent.feedback_ready:type_name -> collab.v1.FeedbackReadyEvent
	1,  // 29: collab.v1.StoryCreatedEvent.story:type_name -> collab.v1.Story
	1,  // 30: collab.v1.StoryUpdatedEvent.story:type_name -> collab.v1.Story
	3,  // 31: collab.v1.EpicCreatedEvent.epic:type_name -> collab.v1.Epic
	35, // 32: collab.v1.MemberJoinedEvent.member:type_name -> collab.v1.Member
	35, // 33: collab.v1.MemberJoinedEvent.members:type_name -> collab.v1.Member
	35, // 34: collab.v1.MemberLeftEvent.member:type_name -> collab.v1.Member
	35, // 35: collab.v1.TypingEvent.member:type_name -> collab.v1.Member
	24, // 36: collab.v1.FeedbackReadyEvent.feedback:type_name -> collab.v1.Feedback
	0,  // 37: collab.v1.CollabService.Connect:input_type -> collab.v1.ConnectRequest
	5,  // 38: collab.v1.CollabService.CreateEpic:input_type -> collab.v1.CreateEpicRequest
	7,  // 39: collab.v1.CollabService.ListEpics:input_type -> collab.v1.ListEpicsRequest
	9,  // 40: collab.v1.CollabService.DeleteEpic:input_type -> collab.v1.DeleteEpicRequest
	11, // 41: collab.v1.CollabService.CreateStory:input_type -> collab.v1.CreateStoryRequest
	12, // 42: collab.v1.CollabService.UpdateStory:input_type -> collab.v1.UpdateStoryRequest
	13, // 43: collab.v1.CollabService.MoveStory:input_type -> collab.v1.MoveStoryRequest
	14, // 44: collab.v1.CollabService.DeleteStory:input_type -> collab.v1.DeleteStoryRequest
	16, // 45: collab.v1.CollabService.GetStory:input_type -> collab.v1.GetStoryRequest
	18, // 46: collab.v1.CollabService.GetBoard:input_type -> collab.v1.GetBoardRequest
	21, // 47: collab.v1.CollabService.SearchStories:input_type -> collab.v1.SearchStoriesRequest
	23, // 48: collab.v1.CollabService.AnalyzeStory:input_type -> collab.v1.AnalyzeStoryRequest
	27, // 49: collab.v1.CollabService.ProposeSplit:input_type -> collab.v1.ProposeSplitRequest
	29, // 50: collab.v1.CollabService.ApplySplit:input_type -> collab.v1.ApplySplitRequest
	31, // 51: collab.v1.CollabService.GetFeedback:input_type -> collab.v1.GetFeedbackRequest
	33, // 52: collab.v1.CollabService.StartTyping:input_type -> collab.v1.TypingRequest
	33, // 53: collab.v1.CollabService.StopTyping:input_type -> collab.v1.TypingRequest
	36, // 54: collab.v1.CollabService.Connect:output_type -> collab.v1.BoardEvent
	6,  // 55: collab.v1.CollabService.CreateEpic:output_type -> collab.v1.EpicResponse
	8,  // 56: collab.v1.CollabService.ListEpics:output_type -> collab.v1.ListEpicsResponse
	10, // 57: collab.v1.CollabService.DeleteEpic:output_type -> collab.v1.DeleteEpicResponse
	17, // 58: collab.v1.CollabService.CreateStory:output_type -> collab.v1.StoryResponse
	17, // 59: collab.v1.CollabService.UpdateStory:output_type -> collab.v1.StoryResponse
	17, // 60: collab.v1.CollabService.MoveStory:output_type -> collab.v1.StoryResponse
	15, // 61: collab.v1.CollabService.DeleteStory:output_type -> collab.v1.DeleteStoryResponse
	17, // 62: collab.v1.CollabService.GetStory:output_type -> collab.v1.StoryResponse
	20, // 63: collab.v1.CollabService.GetBoard:output_type -> collab.v1.GetBoardResponse
	22, // 64: collab.v1.CollabService.SearchStories:output_type -> collab.v1.SearchStoriesResponse
	26, // 65: collab.v1.CollabService.AnalyzeStory:output_type -> collab.v1.FeedbackResponse
	28, // 66: collab.v1.CollabService.ProposeSplit:output_type -> collab.v1.SplitProposalResponse
	30, // 67: collab.v1.CollabService.ApplySplit:output_type -> collab.v1.ApplySplitResponse
	32, // 68: collab.v1.CollabService.GetFeedback:output_type -> collab.v1.GetFeedbackResponse
	34, // 69: collab.v1.CollabService.StartTyping:output_type -> collab.v1.TypingResponse
	34, // 70: collab.v1.CollabService.StopTyping:output_type -> collab.v1.TypingResponse
	54, // [54:71] is the sub-list for method output_type
	37, // [37:54] is the sub-list for method input_type
	37, // [37:37] is the sub-list for extension type_name
	37, // [37:37] is the sub-list for extension extendee
	0,  // [0:37] is the sub-list for field type_name
}

func init() { file_collab_proto_init() }
func file_collab_proto_init() {
	if File_collab_proto != nil {
		return
	}
	file_collab_proto_msgTypes[31].OneofWrappers = []any{}
	file_collab_proto_msgTypes[32].OneofWrappers = []any{}
	file_collab_proto_msgTypes[36].OneofWrappers = []any{
		(*BoardEvent_StoryCreated)(nil),
		(*BoardEvent_StoryUpdated)(nil),
		(*BoardEvent_StoryMoved)(nil),
		(*BoardEvent_StoryDeleted)(nil),
		(*BoardEvent_EpicCreated)(nil),
		(*BoardEvent_MemberJoined)(nil),
		(*BoardEvent_MemberLeft)(nil),
		(*BoardEvent_TypingStarted)(nil),
		(*BoardEvent_TypingStopped)(nil),
		(*BoardEvent_FeedbackReady)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_collab_proto_rawDesc), len(file_collab_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   47,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_collab_proto_goTypes,
		DependencyIndexes: file_collab_proto_depIdxs,
		MessageInfos:      file_collab_proto_msgTypes,
	}.Build()
	File_collab_proto = out.File
	file_collab_proto_goTypes = nil
	file_collab_proto_depIdxs = nil
}
