package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"vigil-srv/internal/assessment"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/minio"

	"github.com/google/uuid"
)

const reportURLExpiry = 24 * time.Hour

// GenerateReport - Provider-backed report with fixed-template fallback.
// When MinIO is configured the markdown is uploaded and a presigned
// download URL is returned alongside the content.
func (uc *implUseCase) GenerateReport(ctx context.Context, sc model.Scope, input assessment.ReportInput) (assessment.ReportOutput, error) {
	switch input.Type {
	case assessment.ReportTypeExecutive, assessment.ReportTypeTechnical, assessment.ReportTypeIncident:
	default:
		return assessment.ReportOutput{}, assessment.ErrInvalidReportType
	}

	content := ""
	if uc.provider != nil {
		genCtx, cancel := context.WithTimeout(ctx, assessment.AssessTimeout)
		generated, err := uc.provider.Generate(genCtx, uc.buildReportPrompt(input.Type, input.Summary))
		cancel()
		if err != nil {
			uc.l.Warnf(ctx, "assessment.usecase.GenerateReport: provider failed, using template: %v", err)
		} else {
			content = generated
		}
	}
	if content == "" {
		content = fallbackReport(input.Type, input.Summary)
	}

	output := assessment.ReportOutput{
		Report: model.SecurityReport{
			Content:     content,
			GeneratedAt: time.Now().UTC(),
			Type:        model.AnalysisTypeReport,
		},
	}

	if uc.minio == nil {
		return output, nil
	}

	objectName := fmt.Sprintf("reports/%s/%s.md", sc.UserID, uuid.New().String())
	fileBytes := []byte(content)

	_, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.ReportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(fileBytes),
		Size:        int64(len(fileBytes)),
		ContentType: "text/markdown; charset=utf-8",
		Metadata: map[string]string{
			"report_type": input.Type,
			"user_id":     sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.GenerateReport: upload failed: %v", err)
		return output, nil
	}
	output.ObjectName = objectName

	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ReportBucket,
		ObjectName: objectName,
		Expiry:     reportURLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.GenerateReport: presign failed: %v", err)
		return output, nil
	}
	output.DownloadURL = presigned.URL

	return output, nil
}
