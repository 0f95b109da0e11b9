package reporting

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

// SummaryPDFGenerator puerto para la representación PDF del resumen.
// La implementación (Maroto) vive en infrastructure.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary *dto.SummaryResponse) ([]byte, error)
}
