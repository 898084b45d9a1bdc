package errors

/*
	Error message and suggestions message associated with them
*/

const (
	// configuration
	MissingEnvVarErrorMsg         = "required environment variable \"%s\" is not set"
	MissingCredentialsSuggestions = "Create a Cloud API key with `confluent api-key create --resource cloud`,\nthen export CLOUD_API_KEY and CLOUD_API_SECRET before rerunning."

	// enumeration
	AuthenticationErrorMsg     = "Confluent Cloud rejected the provided API credentials (HTTP %d)"
	AuthenticationSuggestions  = "Verify that CLOUD_API_KEY and CLOUD_API_SECRET hold a valid Cloud API key.\nResource-scoped (Kafka) API keys cannot list environments; a Cloud key is required."
	TransientAPIErrorMsg       = "unable to %s"
	TransientAPIStatusErrorMsg = "unable to %s: API returned HTTP %d"
	TransientAPISuggestions    = "This is likely a transient network or Confluent Cloud availability issue.\nCheck https://status.confluent.cloud and rerun the generator."
	EmptyEnvironmentWarning    = "cluster listing for environment %s returned no data"

	// scrape config building
	DuplicateTargetErrorMsg   = "clusters %s and %s produce identical label sets"
	DuplicateTargetSuggestion = "Every scrape target must be uniquely labeled or Prometheus will deduplicate them.\nThis indicates duplicate cluster records in the API response."
	MarshalErrorMsg           = "unable to serialize scrape configuration to YAML"
	AMPRegionErrorMsg         = "unable to determine an AWS region for the AMP remote-write endpoint"
	AMPRegionSuggestions      = "Pass a full workspace ARN with --amp-workspace-arn, or set --amp-region explicitly."
	InvalidWorkspaceARNMsg    = "invalid AMP workspace ARN \"%s\""

	// output
	FileWriteErrorMsg         = "unable to write scrape configuration to \"%s\""
	FileWriteSuggestions      = "Verify that the output directory exists and is writable."
	GeneratedConfigMsg        = "Prometheus config generated: %s"
	ClusterSummaryHeaderMsg   = "Discovered %d Kafka clusters across %d environments.\n"
	NoClustersFoundWarningMsg = "No Kafka clusters were discovered; writing an empty scrape_configs list."
)
