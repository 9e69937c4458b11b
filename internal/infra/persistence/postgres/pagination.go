package postgres

import (
	"strings"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paginate counts the rows matched by base, then loads one page of them.
// decorate adds ordering and preloads, which must not reach the COUNT query.
func paginate[M any](base *gorm.DB, page entity.PageRequest, decorate func(*gorm.DB) *gorm.DB) ([]*M, int64, error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rows")
	}

	if total == 0 || int64(page.Offset()) >= total {
		return nil, total, nil
	}

	var rows []*M
	query := base.Session(&gorm.Session{})
	if decorate != nil {
		query = decorate(query)
	}
	if err := query.Offset(page.Offset()).Limit(page.Size).Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to load page")
	}

	return rows, total, nil
}

func mapModels[M, E any](rows []*M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}

	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
