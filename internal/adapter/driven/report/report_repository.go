package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
	"github.com/diillson/aws-cur-etl-go/internal/domain/repository"
	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
)

// utf8BOM aparece no início de exports do CUR gerados por planilhas.
const utf8BOM = "\ufeff"

// ReportRepositoryImpl implementa o ReportRepository lendo arquivos CSV do disco.
type ReportRepositoryImpl struct{}

// NewReportRepository cria uma nova implementação do ReportRepository.
func NewReportRepository() repository.ReportRepository {
	return &ReportRepositoryImpl{}
}

// LoadReport lê o arquivo CSV inteiro em memória. A primeira linha é o cabeçalho.
func (r *ReportRepositoryImpl) LoadReport(ctx context.Context, path string) (entity.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return entity.RawTable{}, err
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return entity.RawTable{}, fmt.Errorf("error accessing CUR file: %w", err)
	}
	if fileInfo.IsDir() {
		return entity.RawTable{}, fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return entity.RawTable{}, fmt.Errorf("error opening CUR file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Linhas com menos campos que o cabeçalho são aceitas; os campos ausentes contam como vazios.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return entity.RawTable{}, fmt.Errorf("error parsing CUR file %s: %w", path, err)
	}

	if len(records) == 0 {
		return entity.RawTable{}, fmt.Errorf("%w: %s", types.ErrEmptyReport, path)
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	return entity.RawTable{
		Header:  header,
		Records: records[1:],
	}, nil
}
