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
package ioc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/viewstate"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCronJobs(t *testing.T) {
	econf.Set("cron.viewstate", map[string]any{
		"spec":          "0 */5 * * * *",
		"enableSeconds": true,
	})
	var crons []ecron.Ecron = initCronJobs(viewstate.NewRegistry(time.Minute))
	require.Len(t, crons, 1)
	assert.Equal(t, "cron.viewstate", crons[0].Name())
}

type namedJob struct {
	err  error
	runs int
}

func (j *namedJob) Name() string {
	return "test_job"
}

func (j *namedJob) Run(_ context.Context) error {
	j.runs++
	return j.err
}

func TestFuncJobWrapper(t *testing.T) {
	testCases := []struct {
		name    string
		job     *namedJob
		wantErr error
	}{
		{name: "成功", job: &namedJob{}},
		{name: "失败", job: &namedJob{err: errors.New("mock error")}, wantErr: errors.New("mock error")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := funcJobWrapper(tc.job)(context.Background())
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, 1, tc.job.runs)
		})
	}
}
