// Package configurator binds named, typed configuration values to program
// state and reconciles them across multiple sources: defaults, command-line
// arguments, environment variables, and files.
//
// Features:
//   - Explicit or struct-tag based parameter registration
//   - Multiple independent configurators merged into one key space
//   - Duplicate keys rejected at construction, O(log n) key routing
//   - Deterministic key to env-var and CLI-flag name translation
//   - Bulk set with per-key partial-failure reporting
//   - Enum parameters with sorted, documented option lists
//   - Thread-safe value access scoped per bound configuration object
//
// Quick Start:
//
//	type SMTPConfig struct {
//	    Host string `config:"host" usage:"smtp relay host"`
//	    Port int    `config:"port" usage:"smtp relay port"`
//	}
//
//	smtp := &SMTPConfig{Host: "localhost", Port: 25}
//	c, err := configurator.FromStruct("smtp", "mail delivery", "smtp/", smtp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	configurator.SetFromEnv(c, "MYAPP_")     // MYAPP_SMTP_HOST=...
//	configurator.SetFromArgs(c, os.Args[1:]) // -smtp-host=...
//
//	host, _ := c.Value("smtp/host")
//
// Multiple configurators, each bound to its own configuration object, are
// combined with Merge. The merged configurator owns a single sorted key
// index across all children and routes every operation to the owning child:
//
//	all, err := configurator.Merge(smtpConf, dbConf)
//
// Key Names:
// A canonical key like "myApp" maps to the argument name "my-app" and, with
// the prefix "X_", to the environment variable "X_MY_APP". The mapping is
// deterministic and lossy; key sets whose external names collide are
// rejected before any parsing starts.
//
// Thread Safety:
// Single and merged configurators are immutable after construction and safe
// for concurrent reads. Writes to bound values are serialized per bound
// configuration object, not globally.
package configurator
