//go:build sqlite

package store

import "github.com/inovacc/edcourse/internal/params"

func initDB() (Store, error) {
	path, err := params.AppdataPath("edcourse.db")
	if err != nil {
		return nil, err
	}

	return NewSQLite(path)
}
