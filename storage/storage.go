package storage

import "ewintr.nl/ytsummary/model"

type SummaryRepository interface {
	Save(result model.Result) (string, error)
}
