package pptx

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Montagem das partes do pacote OPC. Os XMLs estáticos (master, layout,
// theme e cabeçalhos) vivem em templates.go; aqui ficam só as partes que
// dependem do conteúdo.

func mediaName(idx int, ext string) string {
	return fmt.Sprintf("image%d%s", idx+1, ext)
}

type part struct {
	name string
	data []byte
}

func (p *Presentation) writeParts(zw *zip.Writer) error {
	parts := []part{
		{"[Content_Types].xml", []byte(p.contentTypesXML())},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"docProps/core.xml", []byte(p.coreXML())},
		{"docProps/app.xml", []byte(p.appXML())},
		{"ppt/presentation.xml", []byte(p.presentationXML())},
		{"ppt/_rels/presentation.xml.rels", []byte(p.presentationRelsXML())},
		{"ppt/slideMasters/slideMaster1.xml", []byte(slideMasterXML)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(slideMasterRelsXML)},
		{"ppt/slideLayouts/slideLayout1.xml", []byte(slideLayoutXML)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(slideLayoutRelsXML)},
		{"ppt/theme/theme1.xml", []byte(themeXML)},
	}

	for i, slide := range p.slides {
		n := i + 1
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", n), []byte(slide.xml())},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), []byte(slide.relsXML())},
		)
	}

	for _, m := range p.media {
		parts = append(parts, part{"ppt/media/" + m.name, m.data})
	}

	for _, pt := range parts {
		w, err := zw.Create(pt.name)
		if err != nil {
			return errors.Wrapf(err, "creating part %s", pt.name)
		}
		if _, err := w.Write(pt.data); err != nil {
			return errors.Wrapf(err, "writing part %s", pt.name)
		}
	}
	return nil
}

// esc escapa texto para uso em conteúdo e atributos XML
func esc(s string) string {
	return xmlEscaper.Replace(s)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func (p *Presentation) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Default Extension="jpg" ContentType="image/jpeg"/>`)
	b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func (p *Presentation) coreXML() string {
	stamp := p.created.Format("2006-01-02T15:04:05Z")
	return xmlHeader +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + esc(p.Title) + `</dc:title>` +
		`<dc:creator>` + esc(p.Creator) + `</dc:creator>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + stamp + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

func (p *Presentation) appXML() string {
	return xmlHeader +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>` + esc(p.Creator) + `</Application>` +
		fmt.Sprintf(`<Slides>%d</Slides>`, len(p.slides)) +
		`</Properties>`
}

func (p *Presentation) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelationships + `" xmlns:p="` + nsPresentation + `">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	if len(p.slides) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range p.slides {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideWidthEMU, slideHeightEMU)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (p *Presentation) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="` + relTypeSlideMaster + `" Target="slideMasters/slideMaster1.xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, 2+i, relTypeSlide, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// mediaRefs lista os índices de mídia usados pelo slide (fundo primeiro,
// depois as imagens na ordem de inserção) e o rId de cada um dentro do slide
func (s *Slide) mediaRefs() (order []int, ids map[int]string) {
	ids = make(map[int]string)

	add := func(idx int) {
		if _, ok := ids[idx]; ok {
			return
		}
		// rId1 é o layout
		ids[idx] = fmt.Sprintf("rId%d", 2+len(order))
		order = append(order, idx)
	}

	if s.bgMedia >= 0 {
		add(s.bgMedia)
	}
	for _, sh := range s.shapes {
		if pic, ok := sh.(*Picture); ok {
			add(pic.media)
		}
	}
	return order, ids
}

func (s *Slide) relsXML() string {
	order, ids := s.mediaRefs()

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="` + relTypeSlideLayout + `" Target="../slideLayouts/slideLayout1.xml"/>`)
	for _, idx := range order {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="../media/%s"/>`, ids[idx], relTypeImage, s.pres.media[idx].name)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (s *Slide) xml() string {
	_, ids := s.mediaRefs()

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRelationships + `" xmlns:p="` + nsPresentation + `">`)
	b.WriteString(`<p:cSld>`)

	switch {
	case s.bgMedia >= 0:
		b.WriteString(`<p:bg><p:bgPr><a:blipFill rotWithShape="1"><a:blip r:embed="` + ids[s.bgMedia] + `"/><a:stretch><a:fillRect/></a:stretch></a:blipFill><a:effectLst/></p:bgPr></p:bg>`)
	case s.bgColor != "":
		b.WriteString(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="` + s.bgColor + `"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`)
	}

	b.WriteString(`<p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	// ids 1 e 0 são reservados; formas começam em 2
	for i, sh := range s.shapes {
		id := i + 2
		switch v := sh.(type) {
		case *TextBox:
			b.WriteString(textBoxXML(id, v))
		case *Shape:
			b.WriteString(shapeXML(id, v))
		case *Picture:
			b.WriteString(pictureXML(id, v, ids[v.media]))
		}
	}

	b.WriteString(`</p:spTree>`)
	b.WriteString(`</p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func xfrmXML(r Rect) string {
	return fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		emu(r.Left), emu(r.Top), emu(r.Width), emu(r.Height))
}

func textBoxXML(id int, t *TextBox) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id)
	b.WriteString(`<p:spPr>`)
	b.WriteString(xfrmXML(t.rect))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/>`)
	b.WriteString(`</p:spPr>`)
	b.WriteString(txBodyXML(t.paras, t.anchor))
	b.WriteString(`</p:sp>`)
	return b.String()
}

func shapeXML(id int, s *Shape) string {
	geom := "rect"
	if s.rounded {
		geom = "roundRect"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Shape %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id, id)
	b.WriteString(`<p:spPr>`)
	b.WriteString(xfrmXML(s.rect))
	b.WriteString(`<a:prstGeom prst="` + geom + `"><a:avLst/></a:prstGeom>`)
	if s.fill != "" {
		b.WriteString(`<a:solidFill><a:srgbClr val="` + s.fill + `"/></a:solidFill>`)
	}
	b.WriteString(`</p:spPr>`)
	b.WriteString(txBodyXML(s.paras, s.anchor))
	b.WriteString(`</p:sp>`)
	return b.String()
}

func pictureXML(id int, p *Picture, relID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`, id, id)
	b.WriteString(`<p:blipFill><a:blip r:embed="` + relID + `"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`)
	b.WriteString(`<p:spPr>`)
	b.WriteString(xfrmXML(p.rect))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	b.WriteString(`</p:spPr>`)
	b.WriteString(`</p:pic>`)
	return b.String()
}

func txBodyXML(paras []*Paragraph, anchor Anchor) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:txBody><a:bodyPr wrap="square" anchor="%s"><a:normAutofit/></a:bodyPr><a:lstStyle/>`, anchor)

	if len(paras) == 0 {
		b.WriteString(`<a:p/>`)
	}
	for _, para := range paras {
		b.WriteString(`<a:p><a:pPr algn="` + string(para.align) + `"/>`)
		for _, run := range para.runs {
			fmt.Fprintf(&b, `<a:r><a:rPr lang="en-US" sz="%d"`, centipoints(run.sizePt))
			if run.bold {
				b.WriteString(` b="1"`)
			}
			if run.italic {
				b.WriteString(` i="1"`)
			}
			b.WriteString(`>`)
			if run.color != "" {
				b.WriteString(`<a:solidFill><a:srgbClr val="` + run.color + `"/></a:solidFill>`)
			}
			b.WriteString(`</a:rPr><a:t>` + esc(run.text) + `</a:t></a:r>`)
		}
		b.WriteString(`</a:p>`)
	}

	b.WriteString(`</p:txBody>`)
	return b.String()
}
