package salary

import "context"

type ConfigurationService interface {
	CreateConfiguration(ctx context.Context, req UpsertConfigurationRequest) (ConfigurationResponse, error)
	GetConfiguration(ctx context.Context, id string) (ConfigurationResponse, error)
	ListConfigurations(ctx context.Context) ([]ConfigurationResponse, error)
	UpdateConfiguration(ctx context.Context, id string, req UpsertConfigurationRequest) (ConfigurationResponse, error)
	DeleteConfiguration(ctx context.Context, id string) error
}
