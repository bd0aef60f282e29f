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

package sql

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

// SqlTaskQuery runs a saved SQL query.
type SqlTaskQuery struct {
	workflows.Leaf

	QueryId string
}

func NewSqlTaskQuery(queryId string) *SqlTaskQuery {
	return &SqlTaskQuery{QueryId: queryId}
}

func (q *SqlTaskQuery) ToSDK() *sdk.SqlTaskQuery {
	return &sdk.SqlTaskQuery{QueryId: q.QueryId}
}
