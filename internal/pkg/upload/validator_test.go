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
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
	pngContent = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
)

func TestValidator_ValidateBytes(t *testing.T) {
	testCases := []struct {
		name      string
		validator *Validator
		content   []byte
		wantErr   string
		wantType  string
	}{
		{
			name:      "PDF",
			validator: NewResumeValidator(Config{}),
			content:   pdfContent,
			wantType:  MIMEPDF,
		},
		{
			name:      "纯文本",
			validator: NewResumeValidator(Config{}),
			content:   []byte("just some text, not a resume file"),
			wantErr:   "Please upload a PDF or DOCX file",
		},
		{
			name:      "图片不能当简历",
			validator: NewResumeValidator(Config{}),
			content:   pngContent,
			wantErr:   "Please upload a PDF or DOCX file",
		},
		{
			name:      "太大",
			validator: NewResumeValidator(Config{MaxSize: 1024 * 1024}),
			content:   append(append([]byte{}, pdfContent...), make([]byte, 1024*1024)...),
			wantErr:   "File size must be less than 1MB",
		},
		{
			name:      "空文件",
			validator: NewResumeValidator(Config{}),
			wantErr:   "Please select a file",
		},
		{
			name:      "头像",
			validator: NewImageValidator(0),
			content:   pngContent,
			wantType:  "image/png",
		},
		{
			name:      "PDF 不能当头像",
			validator: NewImageValidator(0),
			content:   pdfContent,
			wantErr:   "Please upload a JPEG, PNG, GIF or WEBP image",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := tc.validator.ValidateBytes("file", "a.bin", tc.content)
			if tc.wantErr != "" {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tc.wantErr, ve.Msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, f.ContentType)
			assert.Equal(t, "file", f.Field)
			assert.Equal(t, tc.content, f.Content)
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write(pdfContent)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("title", "cv"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	fh := req.MultipartForm.File["file"][0]

	f, err := NewResumeValidator(Config{}).Validate("file", fh)
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", f.Name)
	assert.True(t, strings.HasPrefix(string(f.Content), "%PDF-"))

	_, err = NewResumeValidator(Config{}).Validate("file", nil)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
