// Package config builds the installer's configuration: branding defaults,
// the optional ~/.mq-task/installer.yaml file (schema-validated), and
// MQ_TASK_* environment overrides, merged into one explicit Config struct
// that the rest of the pipeline receives by reference.
package config
