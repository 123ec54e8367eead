// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package upload

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/ecodeclub/jobboard/internal/pkg/apiclient"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	DefaultMaxSize int64 = 5 * 1024 * 1024
)

// ValidationError 上传前的校验失败，不会发出任何请求
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type Config struct {
	MaxSize      int64    `yaml:"maxSize"`
	AllowedTypes []string `yaml:"allowedTypes"`
}

// Validator 只是提前拦截明显不合法的文件，最终以后端的校验为准
type Validator struct {
	maxSize int64
	allowed []string
	typeMsg string
}

// NewResumeValidator 简历只允许 PDF 和 DOCX
func NewResumeValidator(cfg Config) *Validator {
	v := &Validator{
		maxSize: cfg.MaxSize,
		allowed: cfg.AllowedTypes,
		typeMsg: "Please upload a PDF or DOCX file",
	}
	if v.maxSize <= 0 {
		v.maxSize = DefaultMaxSize
	}
	if len(v.allowed) == 0 {
		v.allowed = []string{MIMEPDF, MIMEDOCX}
	}
	return v
}

// NewImageValidator 头像和公司 logo
func NewImageValidator(maxSize int64) *Validator {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Validator{
		maxSize: maxSize,
		allowed: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		typeMsg: "Please upload a JPEG, PNG, GIF or WEBP image",
	}
}

func (v *Validator) sizeMsg() string {
	return fmt.Sprintf("File size must be less than %dMB", v.maxSize/(1024*1024))
}

// Validate 校验通过之后把文件读到内存里面，刷新 token 之后可以重发
func (v *Validator) Validate(field string, fh *multipart.FileHeader) (apiclient.File, error) {
	if fh == nil || fh.Size == 0 {
		return apiclient.File{}, &ValidationError{Msg: "Please select a file"}
	}
	if fh.Size > v.maxSize {
		return apiclient.File{}, &ValidationError{Msg: v.sizeMsg()}
	}
	f, err := fh.Open()
	if err != nil {
		return apiclient.File{}, errors.Wrap(err, "打开上传文件失败")
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, v.maxSize+1))
	if err != nil {
		return apiclient.File{}, errors.Wrap(err, "读取上传文件失败")
	}
	return v.ValidateBytes(field, fh.Filename, content)
}

func (v *Validator) ValidateBytes(field, name string, content []byte) (apiclient.File, error) {
	if len(content) == 0 {
		return apiclient.File{}, &ValidationError{Msg: "Please select a file"}
	}
	if int64(len(content)) > v.maxSize {
		return apiclient.File{}, &ValidationError{Msg: v.sizeMsg()}
	}
	mt := mimetype.Detect(content)
	if !v.allowedType(mt) {
		return apiclient.File{}, &ValidationError{Msg: v.typeMsg}
	}
	return apiclient.File{
		Field:       field,
		Name:        name,
		ContentType: mt.String(),
		Content:     content,
	}, nil
}

func (v *Validator) allowedType(mt *mimetype.MIME) bool {
	for _, a := range v.allowed {
		if mt.Is(a) {
			return true
		}
	}
	return false
}
