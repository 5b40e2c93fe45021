// spendchart renderiza os dados de direct spend do FeedMob como gráficos de
// linha ASCII no stdout. A entrada é JSON vindo do stdin ou de um arquivo
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vfg2006/feedmob-reporting/internal/config"
	"github.com/vfg2006/feedmob-reporting/internal/usecases/charting"
	"github.com/vfg2006/feedmob-reporting/pkg/log"
)

var (
	chartWidth  int
	chartHeight int
)

var rootCmd = &cobra.Command{
	Use:   "spendchart [arquivo.json]",
	Short: "Renderiza gráficos ASCII de direct spend do FeedMob",
	Long: `Lê registros de direct spend em JSON (um array de registros ou um objeto
com a chave "data"), agrupa por click URL e desenha um gráfico de linhas
ASCII com tabela de dados para cada grupo.

Sem argumento, a entrada é lida do stdin.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVar(&chartWidth, "width", 0, "largura do gráfico em colunas")
	rootCmd.Flags().IntVar(&chartHeight, "height", 0, "altura do gráfico em linhas")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	log.Setup(cfg.App.LogLevel)

	// Flags têm precedência sobre o ambiente
	if cmd.Flags().Changed("width") {
		cfg.Chart.Width = chartWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Chart.Height = chartHeight
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	service := charting.NewService(cfg)
	fmt.Println(service.RenderReport(input))
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", args[0])
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	return data, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
