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

package jobs

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

type ConditionTaskOp string

const (
	ConditionTaskOpEqual          ConditionTaskOp = "EQUAL_TO"
	ConditionTaskOpNotEqual       ConditionTaskOp = "NOT_EQUAL"
	ConditionTaskOpGreaterThan    ConditionTaskOp = "GREATER_THAN"
	ConditionTaskOpGreaterOrEqual ConditionTaskOp = "GREATER_THAN_OR_EQUAL"
	ConditionTaskOpLessThan       ConditionTaskOp = "LESS_THAN"
	ConditionTaskOpLessOrEqual    ConditionTaskOp = "LESS_THAN_OR_EQUAL"
)

// ConditionTask compares two operand strings and exposes the outcome to
// dependent tasks.
type ConditionTask struct {
	workflows.Leaf

	Left  string
	Op    ConditionTaskOp
	Right string
}

func NewConditionTask(left string, op ConditionTaskOp, right string) *ConditionTask {
	return &ConditionTask{Left: left, Op: op, Right: right}
}

func (t *ConditionTask) ToSDK() *sdk.ConditionTask {
	return &sdk.ConditionTask{
		Left:  t.Left,
		Op:    sdk.ConditionTaskOp(t.Op),
		Right: t.Right,
	}
}
