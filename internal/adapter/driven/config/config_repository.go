package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-cur-etl-go/internal/domain/repository"
	"github.com/diillson/aws-cur-etl-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// unmarshalers mapeia a extensão do arquivo para o decodificador correspondente.
var unmarshalers = map[string]struct {
	format    string
	unmarshal func([]byte, interface{}) error
}{
	".toml": {"TOML", toml.Unmarshal},
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	decoder, ok := unmarshalers[fileExtension]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config
	if len(strings.TrimSpace(string(fileData))) == 0 {
		return &config, nil
	}

	if err := decoder.unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s file: %w", decoder.format, err)
	}

	if config.TopN < 0 {
		return nil, fmt.Errorf("invalid top_n in %s: %w", filePath, types.ErrInvalidTopN)
	}
	if config.SpikeFactor < 0 {
		return nil, fmt.Errorf("invalid spike_factor in %s: %w", filePath, types.ErrInvalidSpikeFactor)
	}

	return &config, nil
}
