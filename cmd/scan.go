package cmd

import (
	"fmt"
	"os"

	"github.com/backwind1233/taskguard/internal/classifier"
	"github.com/backwind1233/taskguard/internal/config"
	"github.com/backwind1233/taskguard/internal/logging"
	"github.com/backwind1233/taskguard/internal/report"
	"github.com/backwind1233/taskguard/internal/rules"
	"github.com/backwind1233/taskguard/internal/sarif"
	"github.com/backwind1233/taskguard/internal/scanner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

var rootDir string
var jsonOutput bool
var sarifPath string
var rulesFile string
var configFile string
var debugMode bool

var logger *zap.SugaredLogger

var scanCmd = &cobra.Command{
	Use:   "scan [pasta...]",
	Short: "Escaneia pastas de task em busca de prompt injection, comandos perigosos e segredos",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		logger, err = logging.New(debugMode)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Erro ao iniciar logger:", err)
			os.Exit(2)
		}
		defer logger.Sync()

		// Erros de configuração são fatais antes de qualquer scan
		cfg, err := config.Load(configFile, rootDir)
		if err != nil {
			logger.Errorw("Erro ao carregar configuração", "erro", err)
			os.Exit(2)
		}
		if rulesFile != "" {
			cfg.Rules.File = rulesFile
		}

		catalog := rules.Default()
		if cfg.Rules.File != "" {
			pack, err := rules.LoadPack(cfg.Rules.File)
			if err != nil {
				logger.Errorw("Erro ao carregar rule pack", "erro", err)
				os.Exit(2)
			}
			catalog.Merge(pack)
			logger.Infof("Rule pack carregado: %s (%d regra(s))", cfg.Rules.File, pack.Len())
		}

		clf := classifier.New(cfg.Classifier, logger)
		if clf.Available() {
			logger.Infof("Classificador externo ativo: %s", cfg.Classifier.Command)
		} else {
			logger.Debugf("Classificador externo indisponível, usando só regras de padrão")
		}

		session := scanner.NewSession(scanner.NewEngine(catalog), clf, logger)

		logger.Infof("🔍 Escaneando tasks em: %s", rootDir)
		if err := session.ScanTasks(rootDir, args); err != nil {
			logger.Errorw("Erro ao escanear", "erro", err)
			os.Exit(2)
		}

		summary := report.Summarize(session.Findings())

		if sarifPath != "" {
			if err := sarif.Export(session.Findings(), sarifPath, "taskguard", version); err != nil {
				logger.Errorw("Erro ao exportar SARIF", "erro", err)
			} else {
				logger.Infow("SARIF exportado", "arquivo", sarifPath)
			}
		}

		if jsonOutput {
			out, err := report.RenderJSON(summary, session.Findings(), clf.Available())
			if err != nil {
				logger.Errorw("Erro ao gerar JSON", "erro", err)
				os.Exit(2)
			}
			fmt.Println(out)
		} else {
			fmt.Println(report.RenderMarkdown(summary, clf.Available()))
		}

		// Veredito colorido no stderr, espelhando o relatório
		switch {
		case !summary.Passed():
			color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "❌ FAILED")
		case len(summary.Medium) > 0:
			color.New(color.FgYellow, color.Bold).Fprintln(os.Stderr, "⚠️  WARNING")
		default:
			color.New(color.FgGreen, color.Bold).Fprintln(os.Stderr, "✅ PASSED")
		}

		if !summary.Passed() {
			os.Exit(1)
		}
	},
}

func init() {
	scanCmd.Flags().StringVarP(&rootDir, "directory", "d", "..", "Diretório raiz contendo tasks/")
	scanCmd.Flags().BoolVar(&jsonOutput, "json", false, "Saída em formato JSON")
	scanCmd.Flags().StringVar(&sarifPath, "sarif", "", "Exporta os findings em SARIF 2.1.0 para o arquivo informado")
	scanCmd.Flags().StringVar(&rulesFile, "rules", "", "Arquivo YAML com regras adicionais")
	scanCmd.Flags().StringVar(&configFile, "config", "", "Arquivo de configuração (default: taskguard.yaml no diretório raiz)")
	scanCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(scanCmd)
}
