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

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Request 描述一个后端请求
// 所有内容都缓存在内存里面，刷新 token 之后可以原样重发
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   map[string]string
	Files  []File

	multipart bool
	anonymous bool
}

// File 上传的文件
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

func (f File) Reader() io.Reader {
	return bytes.NewReader(f.Content)
}

func NewRequest(method, path string) Request {
	return Request{Method: method, Path: path}
}

func Get(path string) Request {
	return NewRequest(http.MethodGet, path)
}

func Post(path string) Request {
	return NewRequest(http.MethodPost, path)
}

func Patch(path string) Request {
	return NewRequest(http.MethodPatch, path)
}

func Delete(path string) Request {
	return NewRequest(http.MethodDelete, path)
}

func (r Request) WithQuery(q url.Values) Request {
	r.Query = q
	return r
}

func (r Request) WithBody(body any) Request {
	r.Body = body
	return r
}

// WithForm 以 multipart/form-data 发送
func (r Request) WithForm(form map[string]string, files ...File) Request {
	r.multipart = true
	r.Form = form
	r.Files = append(r.Files, files...)
	return r
}

// Anonymous 不携带 token，401 也不会触发刷新
func (r Request) Anonymous() Request {
	r.anonymous = true
	return r
}

// PageQuery 列表接口通用的 page 和 limit 参数
func PageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// Call 发送请求并且解出 data
func Call[T any](ctx context.Context, conn *Conn, req Request) (T, error) {
	var t T
	status, body, err := conn.Do(ctx, req)
	if err != nil {
		return t, err
	}
	res, err := decode[T](status, body)
	if err != nil {
		return t, err
	}
	return res.Unwrap()
}

// CallPage 分页接口
func CallPage[T any](ctx context.Context, conn *Conn, req Request) (PageData[T], error) {
	return Call[PageData[T]](ctx, conn, req)
}

// Exec 不关心返回数据的接口，204 或者 success 为 true 都算成功
func Exec(ctx context.Context, conn *Conn, req Request) error {
	status, body, err := conn.Do(ctx, req)
	if err != nil {
		return err
	}
	res, err := decode[json.RawMessage](status, body)
	if err != nil {
		return err
	}
	if !res.Success {
		return res.bizError(status)
	}
	return nil
}
