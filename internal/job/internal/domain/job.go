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

import "strings"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Company struct {
	ID          string
	Name        string
	Description string
	Website     string
	Logo        string
	CreatedAt   string
	UpdatedAt   string
}

type Job struct {
	ID             string
	Title          string
	Description    string
	SkillsRequired []string
	Location       string
	IsRemote       bool
	Status         Status
	// Company 招聘者还没有创建公司的时候为 nil
	Company   *Company
	CreatedAt string
	UpdatedAt string
}

func (j Job) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}

// Posting 创建、修改职位的时候提交的内容
type Posting struct {
	Title          string
	Description    string
	SkillsRequired []string
	Location       string
	IsRemote       bool
}

// Normalize 去掉首尾空白，丢弃空的和重复的技能
func (p Posting) Normalize() Posting {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Location = strings.TrimSpace(p.Location)
	seen := make(map[string]struct{}, len(p.SkillsRequired))
	skills := make([]string, 0, len(p.SkillsRequired))
	for _, s := range p.SkillsRequired {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	p.SkillsRequired = skills
	return p
}

// Complete 标题、描述和至少一个技能
func (p Posting) Complete() bool {
	return p.Title != "" && p.Description != "" && len(p.SkillsRequired) > 0
}

// MatchResult 简历和职位的技能匹配度，Score 是百分比
type MatchResult struct {
	JobID    string
	ResumeID string
	Score    float64
	Matches  []string
}
