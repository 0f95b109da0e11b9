package reporting

import "context"

// ReportPDFUseCase exporta el resumen de un rango de fechas como PDF.
type ReportPDFUseCase struct {
	query     *ReportQuery
	generator SummaryPDFGenerator
}

// NewReportPDFUseCase construye el caso de uso.
func NewReportPDFUseCase(query *ReportQuery, generator SummaryPDFGenerator) *ReportPDFUseCase {
	return &ReportPDFUseCase{query: query, generator: generator}
}

// Export arma el resumen (misma validación de rango que Summary) y lo
// renderiza como PDF.
func (uc *ReportPDFUseCase) Export(ctx context.Context, dateFrom, dateTo string) ([]byte, error) {
	summary, err := uc.query.Summary(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateSummaryPDF(ctx, summary)
}
