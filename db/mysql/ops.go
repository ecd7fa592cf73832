// Copyright 2026 Grigor Iliev <grigor@grigoriliev.com>
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

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	db "github.com/czcorpus/vert-tagextract/v3/db"
	"github.com/go-sql-driver/mysql"
)

// Adapter wraps a MySQL connection pool along with
// the configuration it was created from.
type Adapter struct {
	db     *sql.DB
	conf   db.Conf
	dbName string
}

func (a *Adapter) DB() *sql.DB {
	return a.db
}

func (a *Adapter) DBName() string {
	return a.dbName
}

func (a *Adapter) Conf() db.Conf {
	return a.conf
}

func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := a.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database %s not available: %w", a.dbName, err)
	}
	return nil
}

// DSN creates a connection string for the configuration
func DSN(conf db.Conf) string {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	mconf.Params = map[string]string{"autocommit": "true", "charset": "utf8mb4"}
	return mconf.FormatDSN()
}

func OpenDB(conf db.Conf) (*Adapter, error) {
	sqlDB, err := sql.Open("mysql", DSN(conf))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", conf.Name, err)
	}
	return &Adapter{db: sqlDB, dbName: conf.Name, conf: conf}, nil
}

// OpenImportTunedDB creates an Adapter with session parameters
// suitable for bulk inserts (unique and foreign key checks disabled).
// The connection pool is limited to a single connection so the
// session parameters apply to all the queries.
func OpenImportTunedDB(conf db.Conf) (*Adapter, error) {
	a, err := OpenDB(conf)
	if err != nil {
		return nil, err
	}
	a.db.SetMaxOpenConns(1)
	for _, q := range []string{
		"SET SESSION unique_checks = 0",
		"SET SESSION foreign_key_checks = 0",
	} {
		if _, err = a.db.Exec(q); err != nil {
			a.db.Close()
			return nil, fmt.Errorf("failed to tune database session: %w", err)
		}
	}
	return a, nil
}
