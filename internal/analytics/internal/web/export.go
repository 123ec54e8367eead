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

package web

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ecodeclub/jobboard/internal/analytics/internal/domain"
)

const notAvailable = "N/A"

var csvHeader = []string{"Timestamp", "Level", "Message", "User", "Endpoint", "Method", "Status"}

// writeCSV 导出当前页的日志
func writeCSV(w io.Writer, entries []domain.LogEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		status := notAvailable
		if e.StatusCode > 0 {
			status = strconv.Itoa(e.StatusCode)
		}
		err := writer.Write([]string{
			e.Timestamp,
			string(e.Level),
			e.Message,
			orNA(e.UserEmail),
			orNA(e.Endpoint),
			orNA(e.Method),
			status,
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
