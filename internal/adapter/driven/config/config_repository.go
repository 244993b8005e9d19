package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moztelemetry/topline-dashboard-go/internal/domain/repository"
	"github.com/moztelemetry/topline-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega e valida um arquivo de configuração TOML, YAML ou
// JSON. Valores que não fazem sentido para o rollup (workers negativos, tipo
// de relatório desconhecido, código de país fora do formato de duas letras)
// são rejeitados aqui, antes de qualquer leitura do S3.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &config, nil
}

// validateConfig confere os campos específicos do rollup.
func validateConfig(config *types.Config) error {
	if config.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}

	for _, reportType := range config.ReportType {
		switch reportType {
		case "csv", "json", "pdf":
		default:
			return fmt.Errorf("unknown report type %q (expected csv, json or pdf)", reportType)
		}
	}

	for _, country := range config.Countries {
		if len(country) != 2 || strings.ToUpper(country) != country {
			return fmt.Errorf("country codes must be two uppercase letters, got %q", country)
		}
	}

	return nil
}
