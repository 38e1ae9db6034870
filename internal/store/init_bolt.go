//go:build !sqlite

package store

import "github.com/inovacc/edcourse/internal/params"

func initDB() (Store, error) {
	path, err := params.AppdataPath("edcourse.bolt")
	if err != nil {
		return nil, err
	}

	return NewBolt(path)
}
