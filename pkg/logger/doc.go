// Package logger provides a small factory around Go's slog package with
// functional options and helper attribute constructors.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, "numcheck"))
//	log.Info("checked value",
//	    logger.Value("1.23"),
//	    logger.NumberFormat(format),
//	    logger.Valid(true),
//	)
//
// # Configuration
//
//   • WithDevelopment / WithProduction / WithEnvironment – defaults per environment.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel – set a custom slog.Level; ParseLevel reads one from config.
//   • WithAttr – attach static attributes.
//   • WithOutput – write somewhere other than stdout.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("validation finished", logger.Error(err))
//
// without an additional nil check.
package logger
