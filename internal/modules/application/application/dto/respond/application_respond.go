package respond

import "JobTracker/internal/modules/application/domain/entity"

// ApplicationRespond 在实体基础上附带评分
type ApplicationRespond struct {
	*entity.Application
	Score int `json:"score"`
}

func FromApplication(app *entity.Application) *ApplicationRespond {
	return &ApplicationRespond{Application: app, Score: app.Score()}
}

func FromApplications(apps []*entity.Application) []*ApplicationRespond {
	out := make([]*ApplicationRespond, 0, len(apps))
	for _, app := range apps {
		out = append(out, FromApplication(app))
	}
	return out
}

type ImportRespond struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// ExportFile 导出结果，由 handler 写成附件
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
