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

package domain

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// jobRejected 职位被拒绝之后投递也视为被拒绝
const jobRejected = "rejected"

// Job 投递里面带的职位摘要
type Job struct {
	ID          string
	Title       string
	CompanyName string
	Status      string
}

type Application struct {
	ID             string
	ApplicantEmail string
	ResumeID       string
	ResumeTitle    string
	Job            Job
	IsApproved     bool
	// Status 旧版本的后端不返回，可能为空
	Status      Status
	Notes       string
	CoverLetter string
	CreatedAt   string
}

// DisplayStatus 所有页面都用这一个规则
// 1. 合法的 status 优先
// 2. is_approved 为 true 的是 approved
// 3. 职位被拒绝的是 rejected
// 4. 其它都是 pending
func (a Application) DisplayStatus() Status {
	if a.Status.Valid() {
		return a.Status
	}
	if a.IsApproved {
		return StatusApproved
	}
	if a.Job.Status == jobRejected {
		return StatusRejected
	}
	return StatusPending
}

// Filter 招聘者查看投递时的过滤条件，零值表示不过滤
type Filter struct {
	JobID  string
	Status Status
	Search string
}
