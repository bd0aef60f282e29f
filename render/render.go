/*
 * Copyright (c) 2024 The jobkit-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package render turns converted job settings into the JSON payload of a
// Jobs API create call, and offers lookups over a rendered payload.
package render

import (
	"encoding/json"
	"fmt"

	sdk "github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/tidwall/gjson"
)

// JobJSON renders settings as an indented Jobs API create payload.
func JobJSON(settings sdk.JobSettings) ([]byte, error) {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal job settings failed, err=%s", err.Error())
	}
	return data, nil
}

// TaskKeys returns the task_key of every task in a rendered payload, in
// payload order.
func TaskKeys(payload []byte) []string {
	var keys []string
	for _, r := range gjson.GetBytes(payload, "tasks.#.task_key").Array() {
		keys = append(keys, r.String())
	}
	return keys
}

// WarehouseIds returns the distinct SQL warehouse ids referenced by the
// payload's sql tasks, in first-seen order.
func WarehouseIds(payload []byte) []string {
	var (
		seen = make(map[string]bool)
		ids  []string
	)
	for _, r := range gjson.GetBytes(payload, "tasks.#.sql_task.warehouse_id").Array() {
		if id := r.String(); id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// HasSchedule reports whether the payload carries a cron schedule.
func HasSchedule(payload []byte) bool {
	return gjson.GetBytes(payload, "schedule.quartz_cron_expression").Exists()
}

// JobName returns the payload's job name.
func JobName(payload []byte) string {
	return gjson.GetBytes(payload, "name").String()
}
